package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"mess_finder/constants"
	"mess_finder/helper"
	"mess_finder/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateSignature signs a client-side Cloudinary upload so the browser
// can push listing images directly without the API secret.
func GenerateSignature(c *fiber.Ctx) error {
	claim, _, isOwner, _ := helper.GetInfoUserFromToken(c)
	if !isOwner && claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	// Cloudinary signs the alphabetically sorted raw key=value pairs.
	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadSeatImages accepts up to four listing images and returns their
// Cloudinary URLs for inclusion in a submission.
func UploadSeatImages(c *fiber.Ctx) error {
	claim, _, isOwner, _ := helper.GetInfoUserFromToken(c)
	if !isOwner && claim.Role != constants.ROLE_ADMIN {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, nil)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	files := form.File["images"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No images provided", nil)
	}
	if len(files) > constants.MaxSeatImages {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("At most %d images are allowed", constants.MaxSeatImages),
			errors.New("too many files"))
	}

	cld := helper.InitCloudinary()

	var urls []string
	var failedFiles []fiber.Map

	for idx, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
			failedFiles = append(failedFiles, fiber.Map{
				"filename": file.Filename,
				"error":    "Only JPG, PNG and WEBP are supported",
			})
			continue
		}
		if file.Size > 5*1024*1024 {
			failedFiles = append(failedFiles, fiber.Map{
				"filename": file.Filename,
				"error":    "File exceeds 5MB",
			})
			continue
		}

		f, err := file.Open()
		if err != nil {
			failedFiles = append(failedFiles, fiber.Map{
				"filename": file.Filename,
				"error":    "Could not open file",
			})
			continue
		}

		publicID := fmt.Sprintf("seat_%d_%d_%d", claim.UserId, time.Now().UnixNano(), idx)
		uploadResult, err := cld.Upload.Upload(c.Context(), f, uploader.UploadParams{
			Folder:       helper.SeatImageFolder,
			PublicID:     publicID,
			ResourceType: "image",
		})
		f.Close()

		if err != nil {
			failedFiles = append(failedFiles, fiber.Map{
				"filename": file.Filename,
				"error":    "Cloudinary upload failed: " + err.Error(),
			})
			continue
		}

		urls = append(urls, uploadResult.SecureURL)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"urls":   urls,
		"failed": failedFiles,
	})
}
