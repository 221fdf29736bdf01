package notifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"latina/config"
	"latina/infras/kafka"
	kafkaMocks "latina/infras/kafka/mocks"
	"latina/infras/otel/mocks"
	"latina/internal/domains/reservation/model"
	"latina/internal/domains/reservation/notifier"
)

func TestNew_NoClient(t *testing.T) {
	assert.Nil(t, notifier.New(nil, &config.Config{}, mocks.NewOtel()))
}

func TestKafkaNotifier_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topic = "reservation.received"

	n := notifier.New(mockClient, cfg, mocks.NewOtel())
	event := model.ReceivedEvent{ID: "ref-1", Name: "Ana", Guests: 4}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "published",
			setupMock: func() {
				mockClient.EXPECT().
					SendMessages(gomock.Any(), "reservation.received", kafka.Message{Key: "ref-1", Value: event}).
					Return(nil)
			},
		},
		{
			name: "broker error",
			setupMock: func() {
				mockClient.EXPECT().
					SendMessages(gomock.Any(), "reservation.received", gomock.Any()).
					Return(errors.New("broker down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := n.Publish(context.Background(), event)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
