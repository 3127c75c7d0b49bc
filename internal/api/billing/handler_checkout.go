package billing

import (
	"net/http"

	"trainerhub-app/config"
	"trainerhub-app/internal/domain/sitedoc"
	"trainerhub-app/internal/editor"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

var session *editor.Session

func Init(s *editor.Session) {
	session = s
}

// POST /checkout
// Creates a Stripe-hosted checkout session for one of the published
// service packages. The service id is checked against the published
// document, an allow-list: the client never supplies a raw price id.
func CreateCheckoutSession(c *gin.Context) {
	var body struct {
		ServiceID string `json:"service_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ServiceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid service_id"})
		return
	}

	doc := session.Baseline()
	if !doc.Integrations.CheckoutOn {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Checkout is disabled"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	var svc *sitedoc.Service
	for i := range doc.Services {
		if doc.Services[i].ID == body.ServiceID {
			svc = &doc.Services[i]
			break
		}
	}
	if svc == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service"})
		return
	}
	if svc.StripePriceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Service is not purchasable online"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(config.APP_URL + "/thanks"),
		CancelURL:  stripe.String(config.APP_URL + "/services?canceled=1"),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(svc.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
