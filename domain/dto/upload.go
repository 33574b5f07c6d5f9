package dto

// UploadResponse is returned by POST /api/upload after the storage provider
// accepted the file.
type UploadResponse struct {
	Success    bool   `json:"success"`
	StorageKey string `json:"storage_key"`
	StorageURL string `json:"storage_url"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mime_type"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

// DownloadResult carries the bytes and response metadata for a photo
// download.
type DownloadResult struct {
	Data        []byte
	MimeType    string
	Filename    string
	Watermarked bool
}
