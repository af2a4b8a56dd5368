package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/services/logger"
)

func rating(v float64) *float64 { return &v }

func newReviewFixture() (*ReviewService, *fakeReviews, *memCache) {
	reviews := &fakeReviews{}
	cache := newMemCache()
	svc := NewReviewService(ReviewServiceOptions{
		Reviews: reviews,
		Hotels:  newFakeHotels(&models.Hotel{ID: 4, Name: "Seaside"}),
		Cache:   cache,
		Logger:  logger.Nop{},
	})
	return svc, reviews, cache
}

func TestSubmitReview(t *testing.T) {
	svc, reviews, cache := newReviewFixture()
	cache.data[hotelDetailKey(4)] = []byte(`{}`)

	resp, err := svc.Submit(context.Background(), guest, 4, dto.CreateReviewRequest{Rating: rating(5), Comment: "  Lovely stay  "})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, "Lovely stay", resp.Comment)
	assert.Equal(t, "Seaside", resp.Hotel.Name)
	require.Len(t, reviews.created, 1)
	assert.NotContains(t, cache.data, hotelDetailKey(4))
	assert.Contains(t, cache.deleted, cacheKeyFeatured)
}

func TestSubmitReviewOncePerHotel(t *testing.T) {
	svc, reviews, _ := newReviewFixture()
	req := dto.CreateReviewRequest{Rating: rating(4), Comment: "Good"}

	_, err := svc.Submit(context.Background(), guest, 4, req)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), guest, 4, req)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))
	assert.Len(t, reviews.created, 1)

	_, err = svc.Submit(context.Background(), other, 4, req)
	assert.NoError(t, err)
}

func TestSubmitReviewTruncatesComment(t *testing.T) {
	svc, reviews, _ := newReviewFixture()
	long := strings.Repeat("é", constants.MaxCommentLength+50)

	_, err := svc.Submit(context.Background(), guest, 4, dto.CreateReviewRequest{Rating: rating(3), Comment: long})
	require.NoError(t, err)
	assert.Equal(t, constants.MaxCommentLength, len([]rune(reviews.created[0].Comment)))
}

func TestSubmitReviewErrors(t *testing.T) {
	tests := []struct {
		name  string
		hotel uint
		req   dto.CreateReviewRequest
		code  apperrors.ErrorCode
	}{
		{"rating missing", 4, dto.CreateReviewRequest{Comment: "ok"}, apperrors.ErrCodeInvalidInput},
		{"rating zero", 4, dto.CreateReviewRequest{Rating: rating(0), Comment: "ok"}, apperrors.ErrCodeInvalidInput},
		{"rating six", 4, dto.CreateReviewRequest{Rating: rating(6), Comment: "ok"}, apperrors.ErrCodeInvalidInput},
		{"fractional rating", 4, dto.CreateReviewRequest{Rating: rating(4.5), Comment: "ok"}, apperrors.ErrCodeInvalidInput},
		{"blank comment", 4, dto.CreateReviewRequest{Rating: rating(4), Comment: "   "}, apperrors.ErrCodeInvalidInput},
		{"unknown hotel", 99, dto.CreateReviewRequest{Rating: rating(4), Comment: "ok"}, apperrors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reviews, _ := newReviewFixture()
			_, err := svc.Submit(context.Background(), guest, tt.hotel, tt.req)
			assert.True(t, apperrors.HasCode(err, tt.code), "got %v", err)
			assert.Empty(t, reviews.created)
		})
	}
}

func TestSubmitReviewChecksAuthenticationFirst(t *testing.T) {
	svc, _, _ := newReviewFixture()
	_, err := svc.Submit(context.Background(), nil, 99, dto.CreateReviewRequest{})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnauthenticated))
}
