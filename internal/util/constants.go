package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeImage = "image/"
)

var AllowedPhotoExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
