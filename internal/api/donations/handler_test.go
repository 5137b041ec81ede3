package donations

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v75"
)

// fakeGateway is an in-memory billing processor. It tracks call counts
// so tests can assert which side effects an operation produced.
type fakeGateway struct {
	customers map[string]*stripe.Customer
	subs      map[string][]*stripe.Subscription
	prices    []*stripe.Price

	lookupCalls   int
	customerCalls int
	priceCalls    int
	sessionCalls  int
	updateCalls   int
	cancelCalls   int

	lastLookupEmail string

	failLookup   bool
	failSession  bool
	failCancelID string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		customers: map[string]*stripe.Customer{},
		subs:      map[string][]*stripe.Subscription{},
	}
}

func (f *fakeGateway) CustomerByEmail(email string) (*stripe.Customer, error) {
	f.lookupCalls++
	f.lastLookupEmail = email
	if f.failLookup {
		return nil, errors.New("stripe: boom (code: api_error)")
	}
	return f.customers[email], nil
}

func (f *fakeGateway) CreateCustomer(email, name string) (*stripe.Customer, error) {
	f.customerCalls++
	cus := &stripe.Customer{ID: fmt.Sprintf("cus_%d", f.customerCalls), Email: email, Name: name}
	f.customers[email] = cus
	return cus, nil
}

func (f *fakeGateway) CreateMonthlyPrice(amount int64) (*stripe.Price, error) {
	f.priceCalls++
	p := &stripe.Price{ID: fmt.Sprintf("price_%d", f.priceCalls), UnitAmount: amount * 100}
	f.prices = append(f.prices, p)
	return p, nil
}

func (f *fakeGateway) CreateCheckoutSession(customerID, priceID, origin string, amount int64) (*stripe.CheckoutSession, error) {
	if f.failSession {
		return nil, errors.New("stripe: boom (code: api_error)")
	}
	f.sessionCalls++
	return &stripe.CheckoutSession{
		ID:  fmt.Sprintf("cs_test_%d", f.sessionCalls),
		URL: "https://checkout.example/session",
	}, nil
}

func (f *fakeGateway) ActiveSubscriptions(customerID string) ([]*stripe.Subscription, error) {
	return f.subs[customerID], nil
}

func (f *fakeGateway) UpdateSubscriptionPrice(subID, itemID, priceID string) (*stripe.Subscription, error) {
	f.updateCalls++
	for _, subs := range f.subs {
		for _, sub := range subs {
			if sub.ID == subID {
				sub.Items.Data[0].Price = &stripe.Price{ID: priceID}
				return sub, nil
			}
		}
	}
	return nil, errors.New("no such subscription")
}

func (f *fakeGateway) CancelSubscription(subID string) error {
	f.cancelCalls++
	if subID == f.failCancelID {
		return errors.New("stripe: cancel failed (code: api_error)")
	}
	for cusID, subs := range f.subs {
		kept := []*stripe.Subscription{}
		for _, sub := range subs {
			if sub.ID != subID {
				kept = append(kept, sub)
			}
		}
		f.subs[cusID] = kept
	}
	return nil
}

// activate simulates the processor finalizing a checkout: the customer
// gains an active subscription at the given amount.
func (f *fakeGateway) activate(customerID, subID string, amount int64) {
	f.subs[customerID] = append(f.subs[customerID], &stripe.Subscription{
		ID:     subID,
		Status: stripe.SubscriptionStatusActive,
		Items: &stripe.SubscriptionItemList{
			Data: []*stripe.SubscriptionItem{
				{ID: "si_" + subID, Price: &stripe.Price{ID: "price_initial", UnitAmount: amount * 100}},
			},
		},
	})
}

func setupRouter(f *fakeGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(f, "http://localhost:3000")
	r := gin.New()
	r.POST("/api/donations", h.Create)
	r.POST("/api/donations/update", h.Update)
	r.POST("/api/donations/cancel", h.Cancel)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func responseError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestCreateRejectsInvalidInputWithAllViolations(t *testing.T) {
	f := newFakeGateway()
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations", gin.H{
		"amount": 5,
		"email":  "not-an-email",
		"name":   "A",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	msg := responseError(t, rec)
	assert.Contains(t, msg, "amount must be at least 10")
	assert.Contains(t, msg, "invalid email address")
	assert.Contains(t, msg, "name must be at least 2 characters")

	// Fail fast: nothing reached the processor.
	assert.Zero(t, f.lookupCalls)
	assert.Zero(t, f.customerCalls)
	assert.Zero(t, f.priceCalls)
	assert.Zero(t, f.sessionCalls)
}

func TestCreateRejectsAmountsBelowMinimum(t *testing.T) {
	for _, amount := range []int64{-1, 0, 1, 9} {
		t.Run(fmt.Sprint(amount), func(t *testing.T) {
			f := newFakeGateway()
			r := setupRouter(f)

			rec := postJSON(t, r, "/api/donations", gin.H{
				"amount": amount,
				"email":  "a@b.se",
				"name":   "Ali",
			})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, f.customerCalls)
			assert.Zero(t, f.priceCalls)
			assert.Zero(t, f.sessionCalls)
		})
	}
}

func TestCreateNewDonor(t *testing.T) {
	f := newFakeGateway()
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations", gin.H{
		"amount": 50,
		"email":  "a@b.se",
		"name":   "Ali",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["sessionId"])
	assert.NotEmpty(t, body["url"])

	assert.Equal(t, 1, f.customerCalls)
	assert.Equal(t, 1, f.priceCalls)
	assert.Equal(t, 1, f.sessionCalls)
	assert.Zero(t, f.updateCalls)
	assert.Zero(t, f.cancelCalls)
}

func TestCreateNormalizesEmail(t *testing.T) {
	f := newFakeGateway()
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations", gin.H{
		"amount": 25,
		"email":  "  Donor@Example.SE ",
		"name":   "  Fatima  ",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "donor@example.se", f.lastLookupEmail)
	assert.Equal(t, "donor@example.se", f.customers["donor@example.se"].Email)
	assert.Equal(t, "Fatima", f.customers["donor@example.se"].Name)
}

func TestCreateConflictWithActiveSubscription(t *testing.T) {
	f := newFakeGateway()
	f.customers["a@b.se"] = &stripe.Customer{ID: "cus_existing", Email: "a@b.se"}
	f.activate("cus_existing", "sub_1", 50)
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations", gin.H{
		"amount": 75,
		"email":  "a@b.se",
		"name":   "Ali",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, responseError(t, rec), "active subscription")

	// Conflict creates nothing.
	assert.Zero(t, f.customerCalls)
	assert.Zero(t, f.priceCalls)
	assert.Zero(t, f.sessionCalls)
}

func TestCreateProcessorErrorIsNotLeaked(t *testing.T) {
	f := newFakeGateway()
	f.failSession = true
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations", gin.H{
		"amount": 50,
		"email":  "a@b.se",
		"name":   "Ali",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	msg := responseError(t, rec)
	assert.NotContains(t, msg, "api_error")
	assert.NotContains(t, msg, "stripe")
	assert.Equal(t, "Something went wrong. Please try again.", msg)
}

func TestUpdateUnknownEmail(t *testing.T) {
	f := newFakeGateway()
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations/update", gin.H{
		"email":     "nobody@b.se",
		"newAmount": 100,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, f.priceCalls)
	assert.Zero(t, f.updateCalls)
}

func TestUpdateNoActiveSubscription(t *testing.T) {
	f := newFakeGateway()
	f.customers["a@b.se"] = &stripe.Customer{ID: "cus_1", Email: "a@b.se"}
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations/update", gin.H{
		"email":     "a@b.se",
		"newAmount": 100,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, f.priceCalls)
	assert.Zero(t, f.updateCalls)
}

func TestUpdateChangesAmount(t *testing.T) {
	f := newFakeGateway()
	f.customers["a@b.se"] = &stripe.Customer{ID: "cus_1", Email: "a@b.se"}
	f.activate("cus_1", "sub_1", 50)
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations/update", gin.H{
		"email":     "a@b.se",
		"newAmount": 100,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["subscription"])

	// Exactly one fresh price, one item mutation, no new entities.
	require.Equal(t, 1, f.priceCalls)
	assert.Equal(t, int64(10000), f.prices[0].UnitAmount)
	assert.Equal(t, 1, f.updateCalls)
	assert.Zero(t, f.customerCalls)
	assert.Zero(t, f.sessionCalls)

	assert.Equal(t, f.prices[0].ID, f.subs["cus_1"][0].Items.Data[0].Price.ID)
}

func TestCancelAllActiveSubscriptions(t *testing.T) {
	f := newFakeGateway()
	f.customers["a@b.se"] = &stripe.Customer{ID: "cus_1", Email: "a@b.se"}
	f.activate("cus_1", "sub_1", 50)
	f.activate("cus_1", "sub_2", 25)
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations/cancel", gin.H{"email": "a@b.se"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, f.cancelCalls)
	assert.Empty(t, f.subs["cus_1"])
}

func TestCancelPartialFailureIsReported(t *testing.T) {
	f := newFakeGateway()
	f.customers["a@b.se"] = &stripe.Customer{ID: "cus_1", Email: "a@b.se"}
	f.activate("cus_1", "sub_1", 50)
	f.activate("cus_1", "sub_2", 25)
	f.failCancelID = "sub_2"
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations/cancel", gin.H{"email": "a@b.se"})

	// One of two failed: the whole operation reports failure.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 2, f.cancelCalls)
	assert.NotContains(t, responseError(t, rec), "api_error")
}

func TestCancelUnknownEmail(t *testing.T) {
	f := newFakeGateway()
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations/cancel", gin.H{"email": "nobody@b.se"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, f.cancelCalls)
}

// TestDonationLifecycle walks the full donor journey: set up a monthly
// donation, change its amount, cancel it, and verify the email is then
// unknown to update and cancel.
func TestDonationLifecycle(t *testing.T) {
	f := newFakeGateway()
	r := setupRouter(f)

	rec := postJSON(t, r, "/api/donations", gin.H{
		"amount": 50,
		"email":  "a@b.se",
		"name":   "Ali",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, f.customerCalls)

	// The processor finalizes checkout asynchronously.
	f.activate(f.customers["a@b.se"].ID, "sub_live", 50)

	// A second create for the same email must now conflict without
	// creating anything new.
	rec = postJSON(t, r, "/api/donations", gin.H{
		"amount": 50,
		"email":  "a@b.se",
		"name":   "Ali",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, f.customerCalls)
	assert.Equal(t, 1, f.priceCalls)

	rec = postJSON(t, r, "/api/donations/update", gin.H{
		"email":     "a@b.se",
		"newAmount": 100,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10000), f.prices[len(f.prices)-1].UnitAmount)

	rec = postJSON(t, r, "/api/donations/cancel", gin.H{"email": "a@b.se"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, r, "/api/donations/update", gin.H{
		"email":     "a@b.se",
		"newAmount": 60,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postJSON(t, r, "/api/donations/cancel", gin.H{"email": "a@b.se"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
