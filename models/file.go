package models

// File is the metadata record of a profile image stored in the object store.
// The binary content itself lives in the blob store; only the location and
// original-name bookkeeping is persisted in the database.
type File struct {
	// FileSeq is the internal unique identifier of the file record.
	FileSeq int64 `json:"file_seq"`

	// UserID references the account that owns the image.
	UserID int64 `json:"user_id"`

	// FileName is the generated object name under which the image is stored.
	FileName string `json:"file_name"`

	// FilePath is the object-store path prefix (everything before FileName).
	FilePath string `json:"file_path"`

	// OrgFileName is the filename as uploaded by the client.
	OrgFileName string `json:"org_file_name"`

	// FileSize is the reported size of the upload in bytes.
	FileSize int64 `json:"file_size"`

	// FileURL is the full public URL of the stored object.
	FileURL string `json:"file_url"`
}

// TableName returns the name of the database table
// associated with the File model.
func (f File) TableName() string {
	return "files"
}
