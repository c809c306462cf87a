package firebase

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

type scheduleStore struct {
	client *firestore.Client
}

func (s *scheduleStore) collection() *firestore.CollectionRef {
	return s.client.Collection(collectionSchedule)
}

func (s *scheduleStore) List(ctx context.Context) ([]domain.DaySchedule, error) {
	iter := s.collection().OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	days := make([]domain.DaySchedule, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translate("schedule.List", err)
		}
		day, err := decodeDay(snap)
		if err != nil {
			return nil, err
		}
		days = append(days, *day)
	}
	return days, nil
}

func (s *scheduleStore) Get(ctx context.Context, day string) (*domain.DaySchedule, error) {
	snap, err := s.collection().Doc(day).Get(ctx)
	if err != nil {
		return nil, translate("schedule.Get", err)
	}
	return decodeDay(snap)
}

// Set документ перезаписывается целиком
func (s *scheduleStore) Set(ctx context.Context, day string, slots []string) error {
	if _, err := s.collection().Doc(day).Set(ctx, scheduleDoc{Slots: slots}); err != nil {
		return translate("schedule.Set", err)
	}
	return nil
}

func (s *scheduleStore) Delete(ctx context.Context, day string) error {
	if _, err := s.collection().Doc(day).Delete(ctx, firestore.Exists); err != nil {
		return translate("schedule.Delete", err)
	}
	return nil
}

func decodeDay(snap *firestore.DocumentSnapshot) (*domain.DaySchedule, error) {
	var doc scheduleDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%w: schedule %s: %v", ErrDecode, snap.Ref.ID, err)
	}
	return &domain.DaySchedule{
		Date:      snap.Ref.ID,
		Slots:     doc.Slots,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
