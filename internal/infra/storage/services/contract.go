package services

import "github.com/m04kA/LessonBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
