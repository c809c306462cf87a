package firebase

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

type serviceStore struct {
	client *firestore.Client
}

func (s *serviceStore) collection() *firestore.CollectionRef {
	return s.client.Collection(collectionServices)
}

// List новые первыми
func (s *serviceStore) List(ctx context.Context) ([]*domain.Service, error) {
	iter := s.collection().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	services := make([]*domain.Service, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translate("services.List", err)
		}

		var doc serviceDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("%w: service %s: %v", ErrDecode, snap.Ref.ID, err)
		}
		services = append(services, fromServiceDoc(snap.Ref.ID, doc))
	}
	return services, nil
}

func (s *serviceStore) Create(ctx context.Context, service *domain.Service) (string, error) {
	ref, _, err := s.collection().Add(ctx, serviceDoc{
		Name:        service.Name,
		Price:       service.Price,
		Description: service.Description,
	})
	if err != nil {
		return "", translate("services.Create", err)
	}
	return ref.ID, nil
}

func (s *serviceStore) Update(ctx context.Context, service *domain.Service) error {
	_, err := s.collection().Doc(service.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: service.Name},
		{Path: "price", Value: service.Price},
		{Path: "description", Value: service.Description},
		{Path: fieldUpdatedAt, Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return translate("services.Update", err)
	}
	return nil
}

func (s *serviceStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return translate("services.Delete", err)
	}
	return nil
}
