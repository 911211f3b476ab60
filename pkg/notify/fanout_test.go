package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/ecotrack-service/pkg/notify"
	"liyu1981.xyz/ecotrack-service/pkg/notify/mocks"
)

func TestFanout_PublishesToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockPublisher(ctrl)
	second := mocks.NewMockPublisher(ctrl)
	ev := notify.Event{Type: notify.EventTypeNotification, UserID: "u1", Title: "hello"}

	boom := errors.New("boom")
	first.EXPECT().Publish(gomock.Any(), gomock.Eq(ev)).Return(boom).Times(1)
	second.EXPECT().Publish(gomock.Any(), gomock.Eq(ev)).Return(nil).Times(1)

	err := notify.Fanout{first, nil, second}.Publish(context.Background(), ev)
	assert.ErrorIs(t, err, boom)
}

func TestFanout_Empty(t *testing.T) {
	assert.NoError(t, notify.Fanout{}.Publish(context.Background(), notify.Event{}))
	assert.NoError(t, notify.NopPublisher{}.Publish(context.Background(), notify.Event{}))
}
