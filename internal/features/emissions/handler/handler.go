package handler

import (
	"errors"
	"math"

	"greenboard/internal/core/logger"
	"greenboard/internal/features/emissions/domain"
	"greenboard/internal/features/emissions/ports"
	"greenboard/internal/features/emissions/service"
	pkgdomain "greenboard/internal/features/packages/domain"
	pkghandler "greenboard/internal/features/packages/handler"
	pkgservice "greenboard/internal/features/packages/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Conversion constants for the environmental-equivalents block.
// A tree seedling grown for ten years absorbs about 21 kg CO2; an average
// passenger car emits about 0.404 kg CO2 per mile.
const (
	kgPerTreeSeedling = 21.0
	kgPerCarMile      = 0.404
	milesPerKm        = 0.621371
)

// EmissionsHandler handles HTTP requests for emission calculations.
type EmissionsHandler struct {
	engine         *service.Engine
	batch          *service.BatchRunner
	results        ports.ResultRepository
	packageService *pkgservice.PackageService
	logger         *zap.Logger
}

// NewEmissionsHandler creates a new EmissionsHandler.
func NewEmissionsHandler(
	engine *service.Engine,
	batch *service.BatchRunner,
	results ports.ResultRepository,
	packageService *pkgservice.PackageService,
) *EmissionsHandler {
	return &EmissionsHandler{
		engine:         engine,
		batch:          batch,
		results:        results,
		packageService: packageService,
		logger:         logger.Named("emissions-handler"),
	}
}

// EquivalentsResponse translates emissions into everyday terms.
type EquivalentsResponse struct {
	// TreesToOffset is how many tree seedlings grown for ten years would
	// absorb the total emissions.
	TreesToOffset float64 `json:"trees_to_offset"`
	// CarMiles is the equivalent distance driven by an average car.
	CarMiles float64 `json:"car_miles"`
}

// SegmentResponse is the display form of one emission segment.
type SegmentResponse struct {
	Segment        string  `json:"segment"`
	Mode           string  `json:"mode"`
	DistanceKm     float64 `json:"distance_km"`
	WeightKg       float64 `json:"weight_kg"`
	EmissionFactor float64 `json:"emission_factor"`
	EmissionsKg    float64 `json:"emissions_kg"`
}

// EmissionResponse is the display form of a calculation. Emissions are
// rounded to four decimals, distances and weights to two; rounding is a
// presentation concern only and the stored result keeps full precision.
type EmissionResponse struct {
	TotalEmissionsKg float64               `json:"total_emissions_kg"`
	WeightUsedKg     float64               `json:"weight_used_kg"`
	IsDimensional    bool                  `json:"is_dimensional"`
	DistanceKm       float64               `json:"distance_km"`
	DistanceMiles    float64               `json:"distance_miles"`
	TransportMode    string                `json:"transport_mode"`
	EmissionFactor   float64               `json:"emission_factor"`
	Breakdown        []SegmentResponse     `json:"breakdown"`
	Equivalents      EquivalentsResponse   `json:"equivalents"`
	Package          pkgdomain.PackageInfo `json:"package_info"`
}

// BatchRequest is the payload for a batch calculation.
type BatchRequest struct {
	Packages []pkgdomain.PackageInfo `json:"packages"`
}

// BatchItemResponse is one batch outcome, in input order.
type BatchItemResponse struct {
	Index  int               `json:"index"`
	Result *EmissionResponse `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// BatchResponse is the full outcome of a batch calculation.
type BatchResponse struct {
	Results []BatchItemResponse  `json:"results"`
	Summary service.BatchSummary `json:"summary"`
}

// Calculate godoc
// @Summary Calculate shipment emissions
// @Description Computes the carbon footprint for a normalized package record
// @Tags emissions
// @Accept json
// @Produce json
// @Param package body pkgdomain.PackageInfo true "Normalized package"
// @Success 200 {object} EmissionResponse
// @Failure 400 {object} pkghandler.ErrorResponse
// @Failure 422 {object} pkghandler.ErrorResponse
// @Router /emissions/calculate [post]
func (h *EmissionsHandler) Calculate(c *fiber.Ctx) error {
	var pkg pkgdomain.PackageInfo
	if err := c.BodyParser(&pkg); err != nil {
		return h.errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := pkg.Validate(); err != nil {
		return h.errorResponse(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.engine.Calculate(c.Context(), &pkg)
	if err != nil {
		if isCalculationInputError(err) {
			return h.errorResponse(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return h.errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(presentResult(result))
}

// CalculateBatch godoc
// @Summary Calculate emissions for many shipments
// @Description Runs the calculation for each package with a bounded worker pool; one failure never aborts the batch
// @Tags emissions
// @Accept json
// @Produce json
// @Param batch body BatchRequest true "Packages to calculate"
// @Success 200 {object} BatchResponse
// @Failure 400 {object} pkghandler.ErrorResponse
// @Router /emissions/batch [post]
func (h *EmissionsHandler) CalculateBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return h.errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Packages) == 0 {
		return h.errorResponse(c, fiber.StatusBadRequest, "packages is required")
	}

	items, summary := h.batch.Run(c.Context(), req.Packages)

	resp := BatchResponse{
		Results: make([]BatchItemResponse, len(items)),
		Summary: summary,
	}
	for i, item := range items {
		out := BatchItemResponse{Index: item.Index, Error: item.Error}
		if item.Result != nil {
			presented := presentResult(item.Result)
			out.Result = &presented
		}
		resp.Results[i] = out
	}

	return c.JSON(resp)
}

// GetShipmentEmissions godoc
// @Summary Get emissions for a tracked shipment
// @Description Returns the stored result when present, otherwise fetches tracking data from the carrier, calculates and stores it
// @Tags emissions
// @Accept json
// @Produce json
// @Param carrier path string true "Carrier name (ups, fedex, usps, dhl)"
// @Param number path string true "Tracking Number"
// @Param length_cm query number false "Package length in cm"
// @Param width_cm query number false "Package width in cm"
// @Param height_cm query number false "Package height in cm"
// @Success 200 {object} EmissionResponse
// @Failure 400 {object} pkghandler.ErrorResponse
// @Failure 404 {object} pkghandler.ErrorResponse
// @Failure 422 {object} pkghandler.ErrorResponse
// @Router /emissions/{carrier}/{number} [get]
func (h *EmissionsHandler) GetShipmentEmissions(c *fiber.Ctx) error {
	trackingNumber := c.Params("number")
	if trackingNumber == "" {
		return h.errorResponse(c, fiber.StatusBadRequest, "tracking number is required")
	}

	carrier, err := pkgdomain.ParseCarrierID(c.Params("carrier"))
	if err != nil {
		return h.errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	dims, err := pkghandler.ParseDimensionsQuery(c)
	if err != nil {
		return h.errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	stored, err := h.results.Get(c.Context(), carrier, trackingNumber)
	if err != nil {
		h.logger.Warn("Failed to read stored result",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
	}
	if stored != nil {
		return c.JSON(presentResult(stored))
	}

	pkg, err := h.packageService.GetPackage(c.Context(), carrier, trackingNumber, dims)
	if err != nil {
		if errors.Is(err, pkgservice.ErrCarrierNotSupported) {
			return h.errorResponse(c, fiber.StatusNotFound, "carrier not supported")
		}
		return h.errorResponse(c, fiber.StatusBadGateway, err.Error())
	}

	result, err := h.engine.Calculate(c.Context(), pkg)
	if err != nil {
		if isCalculationInputError(err) {
			return h.errorResponse(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return h.errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := h.results.Save(c.Context(), result); err != nil {
		// A storage failure only costs a recomputation next time.
		h.logger.Warn("Failed to store result",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
	}

	return c.JSON(presentResult(result))
}

// isCalculationInputError reports whether the engine rejected the input
// itself rather than failing internally.
func isCalculationInputError(err error) bool {
	return errors.Is(err, domain.ErrMissingAddress) ||
		errors.Is(err, domain.ErrInvalidWeight) ||
		errors.Is(err, domain.ErrMissingWeight) ||
		errors.Is(err, domain.ErrInvalidDimensions)
}

func (h *EmissionsHandler) errorResponse(c *fiber.Ctx, status int, message string) error {
	rayID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(pkghandler.ErrorResponse{
		Message: message,
		RayID:   rayID,
	})
}

// presentResult converts a stored result into its rounded display form.
func presentResult(result *domain.EmissionResult) EmissionResponse {
	breakdown := make([]SegmentResponse, len(result.Breakdown))
	for i, segment := range result.Breakdown {
		breakdown[i] = SegmentResponse{
			Segment:        segment.Segment,
			Mode:           string(segment.Mode),
			DistanceKm:     roundTo(segment.DistanceKm, 2),
			WeightKg:       roundTo(segment.WeightKg, 2),
			EmissionFactor: segment.EmissionFactor,
			EmissionsKg:    roundTo(segment.EmissionsKg, 4),
		}
	}

	return EmissionResponse{
		TotalEmissionsKg: roundTo(result.TotalEmissionsKg, 4),
		WeightUsedKg:     roundTo(result.WeightUsedKg, 2),
		IsDimensional:    result.IsDimensional,
		DistanceKm:       roundTo(result.DistanceKm, 2),
		DistanceMiles:    roundTo(result.DistanceKm*milesPerKm, 2),
		TransportMode:    string(result.TransportMode),
		EmissionFactor:   result.EmissionFactor,
		Breakdown:        breakdown,
		Equivalents: EquivalentsResponse{
			TreesToOffset: roundTo(result.TotalEmissionsKg/kgPerTreeSeedling, 2),
			CarMiles:      roundTo(result.TotalEmissionsKg/kgPerCarMile, 2),
		},
		Package: result.Package,
	}
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
