package operations

// Verbs used in failure messages
const (
	VerbList            = "reading directory contents"
	VerbCopy            = "copying file"
	VerbMove            = "moving file"
	VerbDeleteFile      = "deleting file"
	VerbCreateDirectory = "creating directory"
	VerbDeleteDirectory = "deleting directory"
	VerbSearch          = "searching for files"
)

// Success messages
const (
	MsgCopied           = "File copied successfully."
	MsgMoved            = "File moved successfully."
	MsgFileDeleted      = "File deleted successfully."
	MsgDirectoryCreated = "Directory created successfully."
	MsgDirectoryDeleted = "Directory deleted successfully."
)

// Result is what a successful operation has to show
type Result struct {
	// Header precedes Lines (listing and search only)
	Header string
	Lines  []string
	// Message is a one-line confirmation
	Message string
}

// Error is a failed operation. It renders as "Error <verb>: <cause>".
type Error struct {
	Verb string
	Err  error
}

func (e *Error) Error() string {
	return "Error " + e.Verb + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
