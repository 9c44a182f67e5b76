package services

import (
	"fmt"
	"log"

	"tailor-backend/internal/models"
	"tailor-backend/internal/sms"
	"tailor-backend/internal/timeutil"
)

// NotificationService sends transactional texts. Every send is
// fire-and-forget: failures are logged and never reach the mutation path.
type NotificationService struct {
	Provider sms.Provider
	ShopName string
}

func NewNotificationService(provider sms.Provider, shopName string) *NotificationService {
	return &NotificationService{Provider: provider, ShopName: shopName}
}

func (n *NotificationService) send(phone, message string) {
	if phone == "" {
		return
	}
	go func() {
		result := n.Provider.Send(phone, message)
		if !result.Success {
			log.Printf("[SMS] send to %s failed: %s", phone, result.Message)
		}
	}()
}

// OrderAdvanced tells the client their garment moved to a new stage.
func (n *NotificationService) OrderAdvanced(client *models.Client, order *models.Order) {
	var body string
	switch order.Status {
	case models.OrderReady:
		body = fmt.Sprintf("%s: your %s is ready for collection.", n.ShopName, order.GarmentType)
	case models.OrderDelivered:
		body = fmt.Sprintf("%s: thank you! We hope you love your %s.", n.ShopName, order.GarmentType)
	default:
		body = fmt.Sprintf("%s: your %s has moved to %s.", n.ShopName, order.GarmentType, order.Status)
	}
	n.send(client.Phone, body)
}

// FitSlotConfirmed confirms a booked fitting time.
func (n *NotificationService) FitSlotConfirmed(client *models.Client, order *models.Order) {
	if order.SelectedFitSlot == nil {
		return
	}
	body := fmt.Sprintf("%s: your fitting for the %s is confirmed for %s.",
		n.ShopName, order.GarmentType, order.SelectedFitSlot.Format(timeutil.DisplayLayout))
	n.send(client.Phone, body)
}

// ChangeSlotConfirmed confirms the change-request discussion time.
func (n *NotificationService) ChangeSlotConfirmed(client *models.Client, order *models.Order) {
	if order.AppointmentSelectedSlot == nil {
		return
	}
	body := fmt.Sprintf("%s: we will discuss your change request for the %s on %s.",
		n.ShopName, order.GarmentType, order.AppointmentSelectedSlot.Format(timeutil.DisplayLayout))
	n.send(client.Phone, body)
}
