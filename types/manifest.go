package types

// ManifestEntry is one line of a batch manifest:
// file_path<TAB>data_name<TAB>file_type<TAB>description
type ManifestEntry struct {
	FilePath    string
	DataName    string
	FileType    string
	Description string
	Line        int // 1-based line number in the manifest
}
