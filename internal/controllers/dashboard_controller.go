package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"safari_tours/internal/storage"
)

type DashboardController struct {
	store storage.Store
}

func NewDashboardController(store storage.Store) *DashboardController {
	return &DashboardController{store: store}
}

// Stats runs the four counts concurrently and merges them. The counts
// are independent reads; momentary inconsistency across them is fine.
func (ctrl *DashboardController) Stats(c *gin.Context) {
	var (
		wg                                     sync.WaitGroup
		bookings, vehicles, packages, contacts int64
		errs                                   [4]error
	)
	wg.Add(4)
	go func() { defer wg.Done(); bookings, errs[0] = ctrl.store.CountBookings() }()
	go func() { defer wg.Done(); vehicles, errs[1] = ctrl.store.CountVehicles() }()
	go func() { defer wg.Done(); packages, errs[2] = ctrl.store.CountPackages() }()
	go func() { defer wg.Done(); contacts, errs[3] = ctrl.store.CountContacts() }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logrus.WithError(err).Error("dashboard stats failure")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard stats"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings": bookings,
		"totalVehicles": vehicles,
		"totalPackages": packages,
		"totalContacts": contacts,
	})
}
