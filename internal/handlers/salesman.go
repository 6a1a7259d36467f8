package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type trackEventRequest struct {
	Type string  `json:"type" binding:"required"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Note string  `json:"note"`
}

// TrackEvent appends one tracking event for the calling salesman. GPS pings
// also refresh the salesman's location snapshot.
func TrackEvent(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /salesman/track"
		defer handlePanic(c, route)

		var req trackEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if !validTrackingEvent(req.Type) {
			respondWithError(c, http.StatusBadRequest, route, "invalid event type")
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		var salesman models.Salesman
		err := db.Collection("salesmen").
			FindOne(ctx, bson.M{"userId": callerID(c)}).
			Decode(&salesman)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "salesman not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		now := time.Now()
		entry := models.TrackingLog{
			SalesmanID: salesman.ID.Hex(),
			Type:       req.Type,
			Lat:        req.Lat,
			Lng:        req.Lng,
			Note:       req.Note,
			CreatedAt:  now,
		}
		if _, err := db.Collection("tracking_logs").InsertOne(ctx, entry); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if req.Type == models.TrackingEventGPSPing {
			_, err := db.Collection("salesmen").UpdateOne(ctx,
				bson.M{"_id": salesman.ID},
				bson.M{"$set": bson.M{"location": models.SalesmanLocation{
					Lat:         req.Lat,
					Lng:         req.Lng,
					LastUpdated: now,
				}}},
			)
			if err != nil {
				log.Printf("[%s] location snapshot update failed: %v", route, err)
			}
		}

		c.JSON(http.StatusCreated, gin.H{"success": true})
	}
}

// GetActiveDay reconstructs the salesman's current working window: latest
// DAY_START, earliest DAY_END after it, and the route of pings in between.
func GetActiveDay(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /salesman/:id/active-day"
		defer handlePanic(c, route)

		salesmanID := c.Param("id")

		ctx, cancel := requestContext(c)
		defer cancel()

		cursor, err := db.Collection("tracking_logs").Find(ctx,
			bson.M{"salesmanId": salesmanID},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var logs []models.TrackingLog
		if err := cursor.All(ctx, &logs); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		start, end := activeDayWindow(logs)
		if start == nil {
			respondWithError(c, http.StatusNotFound, route, "no active day")
			return
		}

		response := gin.H{
			"start": start,
			"route": windowRoute(logs, start, end),
		}
		if end != nil {
			response["end"] = end
		}

		log.Printf("[%s] returning window for salesman %s", route, salesmanID)
		c.JSON(http.StatusOK, response)
	}
}

// GetVendorSalesmen lists the salesmen assigned to the calling vendor with
// their latest location snapshots.
func GetVendorSalesmen(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /vendor/salesmen"
		defer handlePanic(c, route)

		ctx, cancel := requestContext(c)
		defer cancel()

		cursor, err := db.Collection("salesman_assignments").Find(ctx,
			bson.M{"vendorProfileId": callerID(c)})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var assignments []models.SalesmanAssignment
		if err := cursor.All(ctx, &assignments); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		salesmanIDs := make([]string, 0, len(assignments))
		for _, assignment := range assignments {
			salesmanIDs = append(salesmanIDs, assignment.SalesmanID)
		}

		salesmen := make([]models.Salesman, 0, len(salesmanIDs))
		if len(salesmanIDs) > 0 {
			objectIDs := toObjectIDs(salesmanIDs)
			salesCursor, err := db.Collection("salesmen").Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			defer salesCursor.Close(ctx)
			if err := salesCursor.All(ctx, &salesmen); err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "decode error")
				return
			}
		}

		c.JSON(http.StatusOK, salesmen)
	}
}

func toObjectIDs(hexIDs []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		if id, err := primitive.ObjectIDFromHex(hexID); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
