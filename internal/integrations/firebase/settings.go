package firebase

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

type settingsStore struct {
	client *firestore.Client
}

func (s *settingsStore) packagesDoc() *firestore.DocumentRef {
	return s.client.Collection(collectionSettings).Doc(docPackages)
}

func (s *settingsStore) GetPackages(ctx context.Context) (map[string]domain.PackageOverride, error) {
	snap, err := s.packagesDoc().Get(ctx)
	if err != nil {
		return nil, translate("settings.GetPackages", err)
	}
	return packagesFromData(snap.Data()), nil
}

func (s *settingsStore) SavePackages(ctx context.Context, packages map[string]domain.PackageOverride) error {
	if _, err := s.packagesDoc().Set(ctx, packagesToData(packages)); err != nil {
		return translate("settings.SavePackages", err)
	}
	return nil
}
