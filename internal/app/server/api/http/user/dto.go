package user

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Username string `json:"username" doc:"Имя пользователя" minLength:"3" maxLength:"32"`
	Email    string `json:"email" doc:"Электронная почта" minLength:"3"`
	Password string `json:"password" doc:"Пароль" minLength:"8"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Email    string `json:"email" doc:"Электронная почта" minLength:"3"`
	Password string `json:"password" doc:"Пароль" minLength:"1"`
}

type authOutput struct {
	Body AuthResponse
}

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type meOutput struct {
	Body MeResponse
}

type MeResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
