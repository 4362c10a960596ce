package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"strings"
	"time"

	"mess_finder/config"
	"mess_finder/constants"
	"mess_finder/database"
	"mess_finder/helper"
	"mess_finder/model"
	"mess_finder/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/jordan-wright/email"
)

// Dev-only login override. Enabled with DEV_ADMIN=true in .env; lets you
// log in locally without any account in the store. Insecure and must never
// be enabled in production.
const (
	devAdminEmail    = "admin@gmail.com"
	devAdminPassword = "123456"
)

func generateToken() (string, error) {
	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

func sendTokenEmail(to, subject, body string) error {
	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	addr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	return e.Send(addr, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST")))
}

func issueVerificationToken(user *model.User) error {
	db := database.DB
	token, err := generateToken()
	if err != nil {
		return err
	}

	verification := model.EmailVerificationToken{
		UserId:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := db.Create(&verification).Error; err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/verify-email?oobCode=%s", config.Config("APP_BASE_URL"), token)
	return sendTokenEmail(user.Email, "Verify your email address",
		fmt.Sprintf("Welcome to Mess Finder! Click the link to verify your email: %s", verifyLink))
}

func RegisterUser(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("RegisterUser").(model.RegisterUserInput)
	if !ok {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil, "general")
	}

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "email")
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_IN_USE, nil, "email")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err, "password")
	}

	newUser := new(model.User)
	copier.Copy(&newUser, &input)
	newUser.Password = hash
	newUser.Role = input.UserType
	newUser.IsActive = true
	newUser.EmailVerified = false
	if input.UserType == constants.ROLE_OWNER {
		newUser.NidNumber = utils.StringPtr(input.NidNumber)
		newUser.Address = utils.StringPtr(input.Address)
	} else {
		newUser.NidNumber = nil
		newUser.Address = nil
	}

	if err := db.Create(&newUser).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_IN_USE, nil, "email")
		}
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err, "general")
	}

	if err := issueVerificationToken(newUser); err != nil {
		// Account exists; the user can request a new mail from the login
		// screen.
		fmt.Println("could not send verification email:", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newUser)
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("LoginInput").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if config.ConfigBool("DEV_ADMIN") &&
		input.Email == devAdminEmail && input.Password == devAdminPassword {
		return devAdminLogin(c)
	}

	userModel, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if userModel == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, errors.New("user not exists"), "email")
	}

	if !helper.CheckPasswordHash(input.Password, userModel.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match email"), "password")
	}

	if !userModel.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	if !userModel.EmailVerified {
		return utils.ErrorResponseHaveKey(c, fiber.StatusForbidden, constants.EMAIL_NOT_VERIFIED, errors.New("email not verified"), "email")
	}

	tokenClaim := model.TokenClaim{
		UserId: userModel.ID,
		Email:  userModel.Email,
		Role:   userModel.Role,
	}
	return respondWithSession(c, tokenClaim, userModel)
}

// devAdminLogin issues an owner-role session with no backing row.
func devAdminLogin(c *fiber.Ctx) error {
	claim := model.TokenClaim{
		UserId: 0,
		Email:  devAdminEmail,
		Role:   constants.ROLE_OWNER,
	}
	devUser := &model.User{
		Name:          "Local Admin",
		Email:         devAdminEmail,
		Role:          constants.ROLE_OWNER,
		EmailVerified: true,
		IsActive:      true,
	}
	return respondWithSession(c, claim, devUser)
}

func respondWithSession(c *fiber.Ctx, claim model.TokenClaim, user *model.User) error {
	token, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"tokens": model.TokenData{
			AccessToken:  token,
			RefreshToken: refreshToken,
		},
		"user": fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"userType": user.Role,
			"phone":    user.Phone,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	return c.JSON(fiber.Map{"message": "logged out"})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		type refreshRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req refreshRequest
		if err := c.BodyParser(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Refresh token not found", nil)
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", nil)
	}

	userIdFloat, _ := claims["userId"].(float64)
	emailClaim, _ := claims["email"].(string)
	roleClaim, _ := claims["role"].(string)

	tokenClaim := model.TokenClaim{
		UserId: uint(userIdFloat),
		Email:  emailClaim,
		Role:   roleClaim,
	}

	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	})
}

func Me(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if user, ok := helper.SessionUser(c); ok {
		return utils.SuccessResponse(c, fiber.StatusOK, user)
	}
	if claim.UserId == 0 && claim.Email == devAdminEmail {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"name":     "Local Admin",
			"email":    devAdminEmail,
			"userType": constants.ROLE_OWNER,
		})
	}
	return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not logged in", nil)
}

func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB
	emailInput, ok := c.Locals("EmailForgotPassword").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var user model.User
	if err := db.Where("email = ?", emailInput.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": constants.USER_NOT_FOUND})
	}

	token, err := generateToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate token"})
	}

	resetToken := model.PasswordResetToken{
		UserId:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not store token"})
	}

	resetLink := fmt.Sprintf("%s/reset-password?oobCode=%s", config.Config("APP_BASE_URL"), token)
	if err := sendTokenEmail(user.Email, "Reset your password",
		fmt.Sprintf("Click the link to reset your password: %s", resetLink)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not send email"})
	}

	return c.JSON(fiber.Map{"message": "A reset link has been sent to your email"})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	resetInput, ok := c.Locals("ResetPassword").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", resetInput.Token, time.Now()).First(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token is invalid or expired"})
	}

	var user model.User
	if err := db.First(&user, resetToken.UserId).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": constants.USER_NOT_FOUND})
	}

	hash, err := helper.HashPassword(resetInput.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update password"})
	}
	db.Delete(&resetToken)

	return c.JSON(fiber.Map{"message": "Password has been reset"})
}

// VerifyEmail consumes the one-time code from the verification mail.
func VerifyEmail(c *fiber.Ctx) error {
	db := database.DB
	code := c.Query("oobCode")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing verification code", nil)
	}

	var verification model.EmailVerificationToken
	if err := db.Where("token = ? AND expires_at > ?", code, time.Now()).First(&verification).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Verification code is invalid or expired"})
	}

	if err := db.Model(&model.User{}).Where("id = ?", verification.UserId).
		Update("email_verified", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.Delete(&verification)

	return c.JSON(fiber.Map{"message": "Email verified. You can log in now."})
}

func ResendVerification(c *fiber.Ctx) error {
	type resendRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
	var req resendRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	user, err := helper.GetUserByEmail(req.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, nil)
	}
	if user.EmailVerified {
		return c.JSON(fiber.Map{"message": "Email is already verified"})
	}

	// Drop stale codes before issuing a fresh one.
	database.DB.Where("user_id = ?", user.ID).Delete(&model.EmailVerificationToken{})

	if err := issueVerificationToken(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not send email"})
	}

	return c.JSON(fiber.Map{"message": "Verification email sent"})
}

// GetUsers lists accounts for the admin panel.
func GetUsers(c *fiber.Ctx) error {
	filterInput := new(model.FilterUser)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.User{})

	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", key, key)
	}
	if filterInput.Role != nil {
		condition = condition.Where("role = ?", *filterInput.Role)
	}
	if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var users model.Users
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Order("id DESC").Find(&users)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       users,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

// GetUserStats returns per-role account counts for the admin dashboard.
func GetUserStats(c *fiber.Ctx) error {
	db := database.DB
	var stats model.UserStats

	db.Model(&model.User{}).Count(&stats.TotalUsers)
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_STUDENT).Count(&stats.Students)
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_OWNER).Count(&stats.Owners)
	db.Model(&model.User{}).Where("role = ?", constants.ROLE_ADMIN).Count(&stats.Admins)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
