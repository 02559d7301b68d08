package engine

// FileType identifies the structured file format a classified input was
// recognized as. It is a closed set: csv, json, log, and xml are the
// formats the engine knows how to parse; unknown is reserved for synthetic
// results attached to inputs Discovery could not classify.
type FileType string

const (
	FileTypeCSV     FileType = "csv"
	FileTypeJSON    FileType = "json"
	FileTypeLog     FileType = "log"
	FileTypeXML     FileType = "xml"
	FileTypeUnknown FileType = "unknown"
)

// extensionTypes maps a lower-cased file extension (including the leading
// dot) to the FileType Discovery classifies it as. Extension is the sole
// classifier; file content is never sniffed.
var extensionTypes = map[string]FileType{
	".csv":  FileTypeCSV,
	".json": FileTypeJSON,
	".log":  FileTypeLog,
	".xml":  FileTypeXML,
}

// Status is the outcome of processing a single file. It is a closed set:
// a file either fully succeeded, fully failed, or produced usable data
// alongside per-line errors (partial).
type Status string

const (
	StatusOK      Status = "ok"
	StatusError   Status = "error"
	StatusPartial Status = "partial"
)

// Mode selects the execution strategy the engine drives a classified input
// list through.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeParallel   Mode = "parallel"
	ModeBenchmark  Mode = "benchmark"
)
