package helper

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

// SeatImageFolder is the Cloudinary folder listing images are uploaded to.
const SeatImageFolder = "mess_finder/seats"

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("cloudinary init failed: %v", err)
	}
	return cld
}
