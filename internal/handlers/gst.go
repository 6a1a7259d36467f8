package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/internal/models"
)

// GSTResult is what the external registry reports for a GSTIN.
type GSTResult struct {
	Valid     bool
	LegalName string
}

// GSTVerifier is the contract to the government registry collaborator. A
// returned error means the registry itself was unreachable (hard dependency,
// surfaced as 500); an invalid GSTIN is a Valid=false result, not an error.
type GSTVerifier interface {
	Verify(ctx context.Context, gstin string) (GSTResult, error)
}

// StubGSTVerifier accepts any well-formed GSTIN. Stands in for the registry
// client in dev and tests.
type StubGSTVerifier struct{}

func (StubGSTVerifier) Verify(_ context.Context, gstin string) (GSTResult, error) {
	if len(gstin) != 15 {
		return GSTResult{Valid: false}, nil
	}
	log.Println("[GST] [INFO] stub verifier accepted", gstin)
	return GSTResult{Valid: true, LegalName: "REGISTERED TAXPAYER"}, nil
}

type gstRequest struct {
	GSTIN string `json:"gstin" binding:"required"`
}

// gstVerdict maps the registry result onto the profile's GST sub-state. A
// failed lookup never keeps a stale legal name around.
func gstVerdict(result GSTResult) (status, legalName string) {
	if result.Valid {
		return models.GSTStatusVerified, result.LegalName
	}
	return models.GSTStatusFailed, ""
}

// VerifyGST stores the GSTIN on the caller's vendor profile and records the
// registry verdict in the GST sub-state.
func VerifyGST(db *gorm.DB, verifier GSTVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /vendor/profile/gst"
		defer handlePanic(c, route)

		var req gstRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "gstin is required")
			return
		}
		gstin := strings.ToUpper(strings.TrimSpace(req.GSTIN))

		ctx, cancel := requestContext(c)
		defer cancel()

		var profile models.VendorProfile
		err := db.WithContext(ctx).Where("user_id = ?", callerID(c)).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, route, "vendor profile not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// The submission is recorded as PENDING before the registry call, so a
		// registry outage leaves an in-flight GSTIN on the profile, not silence.
		if err := db.WithContext(ctx).Model(&models.VendorProfile{}).
			Where("id = ?", profile.ID).
			Updates(map[string]interface{}{
				"gstin":      gstin,
				"gst_status": models.GSTStatusPending,
			}).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		result, err := verifier.Verify(ctx, gstin)
		if err != nil {
			respondWithDomainError(c, route, DependencyError{Op: "gst registry lookup", Err: err})
			return
		}

		gstStatus, legalName := gstVerdict(result)

		if err := db.WithContext(ctx).Model(&models.VendorProfile{}).
			Where("id = ?", profile.ID).
			Updates(map[string]interface{}{
				"gst_status":     gstStatus,
				"gst_legal_name": legalName,
			}).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[GST] [INFO] vendor %s gst status %s", profile.ID, gstStatus)
		c.JSON(http.StatusOK, gin.H{"success": true, "gstStatus": gstStatus, "legalName": legalName})
	}
}
