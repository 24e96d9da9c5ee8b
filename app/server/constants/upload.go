package constants

const (
	UploadFieldName      = "images"        // multipart 表单字段
	UploadMaxFiles       = 10              // 单次请求的最大文件数
	UploadMaxFileSize    = 5 * 1024 * 1024 // 单个文件的最大大小
	UploadDescription    = "Uploaded via admin dashboard"
	UploadFilenamePrefix = "photo-"

	GalleryURLPrefix = "/assets/images/gallery/" // 图片静态访问路径
)

const ConfessionMaxLength = 500
