package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/linkly/linkly-ui/internal/domain/model"
	apperrors "github.com/linkly/linkly-ui/internal/errors"
	"github.com/linkly/linkly-ui/internal/mocks"
	"github.com/linkly/linkly-ui/internal/ports"
)

func newQRFixture(t *testing.T) (*QRService, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)
	return NewQRService(QRServiceOptions{API: api}), api
}

func TestQRService_FetchQRCodes(t *testing.T) {
	svc, api := newQRFixture(t)

	api.EXPECT().ListQRCodes(gomock.Any(), "promo").Return([]model.QRCode{
		{ShortCode: "abc", URLType: "shortened"},
	}, nil)

	codes, err := svc.FetchQRCodes(context.Background(), "promo")
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "abc", codes[0].ShortCode)
	assert.Empty(t, svc.LastError())
}

func TestQRService_Info(t *testing.T) {
	svc, api := newQRFixture(t)

	api.EXPECT().QRInfo(gomock.Any(), "abc", model.QRTargetOriginal).
		Return(model.QRInfo{ShortCode: "abc", URLType: "original"}, nil)

	info, err := svc.Info(context.Background(), "abc", model.QRTargetOriginal)
	require.NoError(t, err)
	assert.Equal(t, "original", info.URLType)
}

func TestQRService_Regenerate(t *testing.T) {
	svc, api := newQRFixture(t)

	img := ports.QRImage{ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	api.EXPECT().RegenerateQR(gomock.Any(), "abc", model.QRTargetShortened, true).Return(img, nil)

	got, err := svc.Regenerate(context.Background(), "abc", model.QRTargetShortened, true)
	require.NoError(t, err)
	assert.Equal(t, img, got)
}

func TestQRService_Create_RejectsInvalidURL(t *testing.T) {
	svc, _ := newQRFixture(t)

	_, err := svc.Create(context.Background(), model.QRCodeRequest{URL: "nope"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.NotEmpty(t, svc.LastError())
}

func TestQRService_Create_Success(t *testing.T) {
	svc, api := newQRFixture(t)

	req := model.QRCodeRequest{URL: "https://example.com", Size: 256}
	api.EXPECT().CreateQR(gomock.Any(), req).
		Return(ports.QRImage{ContentType: "image/png", Data: []byte{1}}, nil)

	img, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
}

func TestQRService_Info_ErrorSetsLastError(t *testing.T) {
	svc, api := newQRFixture(t)

	api.EXPECT().QRInfo(gomock.Any(), "zzz", model.QRTargetShortened).
		Return(model.QRInfo{}, apperrors.NotFound("QR code not found"))

	_, err := svc.Info(context.Background(), "zzz", model.QRTargetShortened)
	require.Error(t, err)
	assert.Equal(t, "QR code not found", svc.LastError())
}
