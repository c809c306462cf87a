package firebase

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/m04kA/LessonBookingService/internal/gateway"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// message текст ошибки без обёртки gRPC, его увидит посетитель
func message(err error) string {
	if s, ok := status.FromError(err); ok {
		return s.Message()
	}
	return err.Error()
}

// translate NotFound превращается в gateway.ErrNotFound, остальное в ErrFirestore
// Сообщение Firestore целиком сохраняется в gateway.StoreError
func translate(op string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%s: %w", op, gateway.ErrNotFound)
	}
	msg := message(err)
	return gateway.NewStoreError(msg, fmt.Errorf("%w: %s: %s", ErrFirestore, op, msg))
}
