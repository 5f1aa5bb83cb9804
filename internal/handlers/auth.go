package handlers

import (
	"net/http"

	"sigma/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Matricula string `json:"matricula" binding:"required" example:"agarcia"`
	Password  string `json:"password" binding:"required" example:"s3cr3t"`
	FullName  string `json:"fullName" example:"A GARCIA"`
}

type signInRequest struct {
	Matricula string `json:"matricula" binding:"required" example:"srchicano"`
	Password  string `json:"password" binding:"required" example:"admin"`
}

// @Summary      Register
// @Description  Creates an AGENT account pending administrator approval
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration"
// @Success      201   {object}  models.PublicUser
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.SignUp(c.Request.Context(), service.RegisterParams{
		Matricula: input.Matricula,
		Password:  input.Password,
		FullName:  input.FullName,
	})
	if err != nil {
		h.respondServiceError(c, "failed to register", "auth_sign_up_failed", err, "matricula", input.Matricula)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.SignIn(c.Request.Context(), input.Matricula, input.Password)
	if err != nil {
		h.respondServiceError(c, "failed to sign in", "auth_sign_in_failed", err, "matricula", input.Matricula)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
