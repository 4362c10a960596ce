package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"mess_finder/constants"
	"mess_finder/database"
	"mess_finder/model"
	"mess_finder/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoUserFromToken resolves the session user from the parsed JWT in
// Locals and returns the claim plus role flags (admin, owner, student).
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false, false, false
	}

	userIdFloat, _ := claims["userId"].(float64)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	claim := model.TokenClaim{
		UserId: uint(userIdFloat),
		Email:  email,
		Role:   role,
	}

	// The dev-admin override session has no backing row.
	if claim.UserId == 0 {
		return claim, false, claim.Role == constants.ROLE_OWNER, false
	}

	var user model.User
	db := database.DB
	if err := db.First(&user, claim.UserId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("user not found: id=%d", claim.UserId)
			utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account does not exist", err)
		} else {
			log.Printf("user lookup failed: id=%d, error=%v", claim.UserId, err)
			utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return model.TokenClaim{}, false, false, false
	}

	claim.Role = user.Role
	c.Locals("sessionUser", &user)

	return claim,
		user.Role == constants.ROLE_ADMIN,
		user.Role == constants.ROLE_OWNER,
		user.Role == constants.ROLE_STUDENT
}

// SessionUser returns the user loaded by GetInfoUserFromToken, if any.
func SessionUser(c *fiber.Ctx) (*model.User, bool) {
	user, ok := c.Locals("sessionUser").(*model.User)
	return user, ok && user != nil
}
