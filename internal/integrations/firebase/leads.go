package firebase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

type leadStore struct {
	client *firestore.Client
}

func (s *leadStore) collection() *firestore.CollectionRef {
	return s.client.Collection(collectionLeads)
}

// Create id документа выдаёт Firestore
func (s *leadStore) Create(ctx context.Context, lead *domain.Lead) (string, error) {
	ref, _, err := s.collection().Add(ctx, toLeadDoc(lead))
	if err != nil {
		return "", translate("leads.Create", err)
	}
	return ref.ID, nil
}

// List новые первыми
func (s *leadStore) List(ctx context.Context, filter domain.LeadFilter) ([]*domain.Lead, error) {
	query := s.collection().Query
	if filter.Status != nil {
		query = query.Where("status", "==", string(*filter.Status))
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	leads := make([]*domain.Lead, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translate("leads.List", err)
		}

		var doc leadDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("%w: lead %s: %v", ErrDecode, snap.Ref.ID, err)
		}
		leads = append(leads, fromLeadDoc(snap.Ref.ID, doc))
	}
	return leads, nil
}

// UpdateStatus Update падает с NotFound на отсутствующем документе
func (s *leadStore) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	_, err := s.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return translate("leads.UpdateStatus", err)
	}
	return nil
}

// BusySlots выборка по ключу дня, а не по диапазону timestamp
func (s *leadStore) BusySlots(ctx context.Context, day string, statuses []domain.LeadStatus) ([]string, error) {
	values := make([]string, 0, len(statuses))
	for _, st := range statuses {
		values = append(values, string(st))
	}

	iter := s.collection().
		Where("day", "==", day).
		Where("status", "in", values).
		Select("time").
		Documents(ctx)
	defer iter.Stop()

	seen := make(map[string]struct{})
	slots := make([]string, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translate("leads.BusySlots", err)
		}

		slot, ok := snap.Data()["time"].(string)
		if !ok || slot == "" {
			continue
		}
		if _, dup := seen[slot]; dup {
			continue
		}
		seen[slot] = struct{}{}
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}
