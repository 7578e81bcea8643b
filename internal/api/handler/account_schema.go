package handler

// Localized response messages. These literals are the service's public API
// contract: clients match on them, so they are kept verbatim.
const (
	msgHello            = "Hello World!"
	msgSignupSuccess    = "Usuário cadastrado com sucesso!"
	msgLoginSuccess     = "Usuário Autenticado!"
	msgUpdateSuccess    = "Usuário atualizado com sucesso!"
	msgNameRequired     = "Nome é obrigatório!"
	msgEmailRequired    = "E-mail é obrigatório!"
	msgPasswordRequired = "Senha é obrigatória!"
	msgUserExists       = "Usuário já existe!"
	msgUserNotFound     = "Usuário não encontrado!"
	msgAccessDenied     = "Acesso negado!"
	msgInvalidPayload   = "Requisição inválida!"
	msgInternalError    = "Erro interno no servidor, tente novamente mais tarde."
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---
//
// Field declaration order matters on signupRequest and loginRequest: the
// validator reports only the first failing field, so the order below fixes
// which message a request missing several fields receives.

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest has no required fields: every value is applied as
// given, and an absent field clears the stored one.
type updateProfileRequest struct {
	Name   string `json:"name"`
	Github string `json:"github"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
	About  string `json:"about"`
}

// --- Response types ---
//
// Response-only projections owned by the transport layer. Neither carries
// a password field of any kind.

// registeredUserResponse is the trimmed projection returned on signup.
type registeredUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// userResponse is the full public projection.
type userResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Github string `json:"github"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
	About  string `json:"about"`
}

type helloResponse struct {
	Msg string `json:"msg"`
}

type signupResponse struct {
	Success     string                 `json:"success"`
	AccessToken string                 `json:"accessToken"`
	User        registeredUserResponse `json:"user"`
}

type loginResponse struct {
	Success     string       `json:"success"`
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type profileResponse struct {
	User userResponse `json:"user"`
}

type updateProfileResponse struct {
	Success string       `json:"success"`
	User    userResponse `json:"user"`
}
