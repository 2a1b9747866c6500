package user

// User is an administrator account for the console.
type User struct {
	ID       int64
	Login    string
	Password string // bcrypt hash
}

// BaseRequest carries credentials for both register and login.
type BaseRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
