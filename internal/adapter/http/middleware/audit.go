package middleware

import (
	"encoding/json"
	"net/http"

	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type auditRoute struct {
	action   domain.AuditAction
	resource string
	param    string
}

// Keyed by method and route template.
var auditRoutes = map[string]auditRoute{
	"POST /api/v1/admin/orders/:order_id/shipment":        {domain.AuditActionCreateShipment, "order", "order_id"},
	"POST /api/v1/admin/shipments/:awb/cancel":            {domain.AuditActionCancelShipment, "shipment", "awb"},
	"PUT /api/v1/admin/shipments/:awb":                    {domain.AuditActionEditShipment, "shipment", "awb"},
	"POST /api/v1/admin/pickups":                          {domain.AuditActionSchedulePickup, "pickup", ""},
	"POST /api/v1/admin/pickups/batch":                    {domain.AuditActionPickupBatch, "pickup", ""},
	"POST /api/v1/admin/payments/:merchant_txn_id/refund": {domain.AuditActionRefund, "payment", "merchant_txn_id"},
}

// AuditLog records successful admin writes after the handler has run.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		route, ok := mapRouteToAction(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		entry := &domain.AuditLog{
			Actor:        c.GetString(CtxActor),
			Action:       route.action,
			ResourceType: route.resource,
			IPAddress:    c.ClientIP(),
		}
		if route.param != "" {
			entry.ResourceID = c.Param(route.param)
		}
		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})
		entry.Details = string(details)

		auditSvc.Log(c.Request.Context(), entry)
	}
}

func mapRouteToAction(method, fullPath string) (auditRoute, bool) {
	r, ok := auditRoutes[method+" "+fullPath]
	return r, ok
}
