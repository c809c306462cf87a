package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/m04kA/LessonBookingService/internal/gateway"
)

// Options параметры проекта Firebase
type Options struct {
	ProjectID string
	// CredentialsFile путь к ключу сервисного аккаунта; пусто - Application Default Credentials
	CredentialsFile string
}

// Connector bootstrap Firestore: приложение, анонимная идентичность, клиент
type Connector struct {
	opts Options
}

func NewConnector(opts Options) *Connector {
	return &Connector{opts: opts}
}

// Connect каждый вызов создаёт новое приложение и новый UID
func (c *Connector) Connect(ctx context.Context) (*gateway.Connection, error) {
	var clientOpts []option.ClientOption
	if c.opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(c.opts.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: c.opts.ProjectID}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: new app: %v", ErrInit, err)
	}

	// Анонимный вход: UID, под которым пишутся лиды этого процесса
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: auth client: %v", ErrInit, err)
	}
	uid, err := signIn(ctx, authClient)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: firestore client: %v", ErrInit, err)
	}

	return &gateway.Connection{
		UID:      uid,
		Leads:    &leadStore{client: client},
		Schedule: &scheduleStore{client: client},
		Settings: &settingsStore{client: client},
		Services: &serviceStore{client: client},
		Closer:   client.Close,
	}, nil
}

type userCreator interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}

// signIn регистрирует анонимного пользователя; UID берётся из записи Firebase Auth
func signIn(ctx context.Context, users userCreator) (string, error) {
	record, err := users.CreateUser(ctx, (&auth.UserToCreate{}).UID(uuid.NewString()))
	if err != nil {
		return "", fmt.Errorf("%w: sign in: %v", ErrInit, err)
	}
	if record == nil || record.UserInfo == nil || record.UID == "" {
		return "", fmt.Errorf("%w: sign in: empty uid", ErrInit)
	}
	return record.UID, nil
}
