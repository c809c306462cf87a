package firebase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/pkg/ptr"
)

func TestLeadDoc_RoundTrip(t *testing.T) {
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	lead := &domain.Lead{
		ID:           "ignored",
		Name:         "Anna",
		Phone:        "+49 151 000",
		Package:      "vip",
		Date:         &day,
		Day:          "2026-10-20",
		Time:         "11:00",
		ReadableDate: "20.10.2026",
		Language:     "de",
		Status:       domain.LeadStatusNew,
		UID:          "uid-1",
		Referrer:     "direct",
		UTMSource:    "google",
	}

	doc := toLeadDoc(lead)
	assert.True(t, doc.CreatedAt.IsZero())
	assert.Equal(t, "new", doc.Status)

	back := fromLeadDoc("doc-1", doc)
	assert.Equal(t, "doc-1", back.ID)
	assert.Equal(t, lead.Name, back.Name)
	assert.Equal(t, lead.Day, back.Day)
	assert.Equal(t, lead.Time, back.Time)
	assert.Equal(t, domain.LeadStatusNew, back.Status)
	assert.Equal(t, "google", back.UTMSource)
	require.NotNil(t, back.Date)
	assert.True(t, day.Equal(*back.Date))
}

func TestPackagesData(t *testing.T) {
	data := packagesToData(map[string]domain.PackageOverride{
		"vip":    {Label: ptr.Ptr("VIP"), Price: ptr.Ptr("650€")},
		"single": {BadgeText: ptr.Ptr("Trial")},
	})
	assert.Equal(t, firestore.ServerTimestamp, data[fieldUpdatedAt])
	assert.Equal(t, map[string]interface{}{"label": "VIP", "price": "650€"}, data["vip"])

	delete(data, fieldUpdatedAt)
	data["junk"] = 42

	back := packagesFromData(data)
	require.Len(t, back, 2)
	assert.Equal(t, "VIP", *back["vip"].Label)
	assert.Equal(t, "650€", *back["vip"].Price)
	assert.Nil(t, back["vip"].BadgeText)
	assert.Equal(t, "Trial", *back["single"].BadgeText)
	assert.Nil(t, back["single"].Label)
}

func TestTranslate(t *testing.T) {
	notFound := status.Error(codes.NotFound, "no such document")
	assert.ErrorIs(t, translate("leads.UpdateStatus", notFound), gateway.ErrNotFound)

	denied := status.Error(codes.PermissionDenied, "Missing or insufficient permissions.")
	err := translate("leads.Create", denied)
	assert.ErrorIs(t, err, ErrFirestore)
	assert.False(t, errors.Is(err, gateway.ErrNotFound))
	assert.Contains(t, err.Error(), ": Missing or insufficient permissions.")
	assert.NotContains(t, err.Error(), "rpc error")

	plain := translate("leads.List", fmt.Errorf("boom"))
	assert.ErrorIs(t, plain, ErrFirestore)
}

func TestTranslate_ReasonKeepsColons(t *testing.T) {
	invalid := status.Error(codes.InvalidArgument, "Value for field: phone is invalid")
	err := translate("leads.Create", invalid)

	assert.ErrorIs(t, err, ErrFirestore)
	assert.Equal(t, "Value for field: phone is invalid", gateway.StoreReason(err))
}
