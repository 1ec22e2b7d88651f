package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewKafkaPublisher(mockWriter)

	event := models.JobApplicationEvent{
		EventID:           "evt-1",
		Timestamp:         1700000000,
		Operation:         models.OperationCreated,
		JobApplicationID:  42,
		ApplicationStatus: models.StatusApplied,
		Tags:              []string{"remote"},
	}

	mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "42", string(msgs[0].Key))

			var got models.JobApplicationEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, event, got)
			return nil
		})

	publisher.Publish(context.Background(), event)
}

func TestKafkaPublisher_WriteErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewKafkaPublisher(mockWriter)

	mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), models.JobApplicationEvent{EventID: "evt-2", JobApplicationID: 1})
	})
}

func TestKafkaPublisher_NotConfigured(t *testing.T) {
	var nilPublisher *services.KafkaPublisher

	assert.NotPanics(t, func() {
		services.NewKafkaPublisher(nil).Publish(context.Background(), models.JobApplicationEvent{EventID: "evt-3"})
		nilPublisher.Publish(context.Background(), models.JobApplicationEvent{EventID: "evt-4"})
	})
}
