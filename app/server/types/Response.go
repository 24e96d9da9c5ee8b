package types

// ErrorMessage 所有错误响应的格式
type ErrorMessage struct {
	Error string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

type UploadResponse struct {
	Message string        `json:"message"`
	Data    []GalleryItem `json:"data"`
}

type ConfessionRequest struct {
	Message string `json:"message"`
}

type ConfessionResponse struct {
	Message string     `json:"message"`
	Data    Confession `json:"data"`
}

type Health struct {
	Status string `json:"status"`
}
