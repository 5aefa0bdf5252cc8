package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/http/middleware"
	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// UserHandler expõe cadastro, login e manutenção de usuários via HTTP
type UserHandler struct {
	registerUC *usecase.RegisterUserUseCase
	loginUC    *usecase.LoginUserUseCase
	logoutUC   *usecase.LogoutUserUseCase
	updateUC   *usecase.UpdateUserUseCase
	deleteUC   *usecase.DeleteUserUseCase
	getUC      *usecase.GetUserUseCase
	listUC     *usecase.ListUsersUseCase
}

func NewUserHandler(
	registerUC *usecase.RegisterUserUseCase,
	loginUC *usecase.LoginUserUseCase,
	logoutUC *usecase.LogoutUserUseCase,
	updateUC *usecase.UpdateUserUseCase,
	deleteUC *usecase.DeleteUserUseCase,
	getUC *usecase.GetUserUseCase,
	listUC *usecase.ListUsersUseCase,
) *UserHandler {
	return &UserHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logoutUC:   logoutUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		getUC:      getUC,
		listUC:     listUC,
	}
}

// UserRequest é o corpo de cadastro e de atualização.
type UserRequest struct {
	Name     string           `json:"name" validate:"notblank"`
	TaxID    string           `json:"taxId" validate:"notblank,cpf"`
	Email    string           `json:"email" validate:"notblank,email"`
	Password string           `json:"password" validate:"notblank"`
	Balance  *decimal.Decimal `json:"balance"`
	Role     string           `json:"role" validate:"notblank"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	output, err := h.registerUC.Execute(r.Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		TaxID:    req.TaxID,
		Email:    req.Email,
		Password: req.Password,
		Balance:  req.Balance,
		Role:     req.Role,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User created successfully",
		ID:      output.ID,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	output, err := h.loginUC.Execute(r.Context(), usecase.LoginUserInput{
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Message:   "User logged in successfully",
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		respondDomainError(w, r, domain.ErrUnauthorized)
		return
	}
	if err := h.logoutUC.Execute(r.Context(), token); err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "User logged out successfully"})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.updateUC.Execute(r.Context(), usecase.UpdateUserInput{
		ID:       id,
		Name:     req.Name,
		TaxID:    req.TaxID,
		Email:    req.Email,
		Password: req.Password,
		Balance:  req.Balance,
		Role:     req.Role,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "User updated successfully"})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	output, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.listUC.Execute(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, output)
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondErrors(w, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}
