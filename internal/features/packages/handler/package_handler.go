package handler

import (
	"errors"

	"greenboard/internal/features/packages/domain"
	"greenboard/internal/features/packages/service"

	"github.com/gofiber/fiber/v2"
)

// PackageHandler handles HTTP requests for package retrieval.
type PackageHandler struct {
	packageService *service.PackageService
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(packageService *service.PackageService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ParseDimensionsQuery reads optional length_cm/width_cm/height_cm query
// parameters. All three must be present and positive to count; dimensions
// are optional, so absence is not an error.
func ParseDimensionsQuery(c *fiber.Ctx) (*domain.Dimensions, error) {
	length := c.QueryFloat("length_cm")
	width := c.QueryFloat("width_cm")
	height := c.QueryFloat("height_cm")

	if length == 0 && width == 0 && height == 0 {
		return nil, nil
	}

	dims := &domain.Dimensions{LengthCm: length, WidthCm: width, HeightCm: height}
	if !dims.Valid() {
		return nil, errors.New("length_cm, width_cm and height_cm must all be positive")
	}
	return dims, nil
}

// GetPackage godoc
// @Summary Get normalized package information
// @Description Fetches and parses carrier tracking data into the normalized package record
// @Tags packages
// @Accept json
// @Produce json
// @Param carrier path string true "Carrier name (ups, fedex, usps, dhl)"
// @Param number path string true "Tracking Number"
// @Param length_cm query number false "Package length in cm"
// @Param width_cm query number false "Package width in cm"
// @Param height_cm query number false "Package height in cm"
// @Success 200 {object} domain.PackageInfo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /packages/{carrier}/{number} [get]
func (h *PackageHandler) GetPackage(c *fiber.Ctx) error {
	trackingNumber := c.Params("number")
	if trackingNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	carrier, err := domain.ParseCarrierID(c.Params("carrier"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	dims, err := ParseDimensionsQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	info, err := h.packageService.GetPackage(c.Context(), carrier, trackingNumber, dims)
	if err != nil {
		if errors.Is(err, service.ErrCarrierNotSupported) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "carrier not supported",
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(info)
}
