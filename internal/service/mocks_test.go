package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"mediavault/internal/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They implement the repository interfaces with
// just enough behavior for the service contracts under test.

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
	// createErr forces Create to fail, used for the concurrent-register case
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.users[user.Username]; exists {
		return gorm.ErrDuplicatedKey
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeVideoRepo struct {
	videos  map[int64]*models.Video
	nextID  int64
	created []*models.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[int64]*models.Video), nextID: 1}
}

func (r *fakeVideoRepo) add(video *models.Video) *models.Video {
	video.ID = r.nextID
	r.nextID++
	r.videos[video.ID] = video
	return video
}

func (r *fakeVideoRepo) Create(_ context.Context, video *models.Video) error {
	if video.UploadDate.IsZero() {
		video.UploadDate = time.Now()
	}
	r.add(video)
	r.created = append(r.created, video)
	return nil
}

func (r *fakeVideoRepo) GetAll(_ context.Context) ([]models.Video, error) {
	return r.sorted(), nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id int64) (*models.Video, error) {
	video, ok := r.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return video, nil
}

func (r *fakeVideoRepo) Search(_ context.Context, _ string) ([]models.Video, error) {
	return r.sorted(), nil
}

func (r *fakeVideoRepo) SearchByGenre(_ context.Context, _ string) ([]models.Video, error) {
	return r.sorted(), nil
}

func (r *fakeVideoRepo) sorted() []models.Video {
	list := make([]models.Video, 0, len(r.videos))
	for _, v := range r.videos {
		list = append(list, *v)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].UploadDate.After(list[j].UploadDate)
	})
	return list
}

type fakeCommentRepo struct {
	comments map[int64]*models.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*models.Comment), nextID: 1}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = r.nextID
	r.nextID++
	comment.CreatedAt = time.Now()
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return comment, nil
}

func (r *fakeCommentRepo) GetByVideo(_ context.Context, videoID int64) ([]models.Comment, error) {
	list := make([]models.Comment, 0)
	for _, c := range r.comments {
		if c.VideoID == videoID {
			list = append(list, *c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

type fakeRatingRepo struct {
	// keyed by (videoID, userID), mirroring the composite unique index
	ratings map[string]*models.Rating
	nextID  int64
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[string]*models.Rating), nextID: 1}
}

func ratingKey(videoID, userID int64) string {
	return fmt.Sprintf("%d:%d", videoID, userID)
}

func (r *fakeRatingRepo) Upsert(_ context.Context, rating *models.Rating) error {
	key := ratingKey(rating.VideoID, rating.UserID)
	if existing, ok := r.ratings[key]; ok {
		existing.Rating = rating.Rating
		existing.UpdatedAt = time.Now()
		return nil
	}
	rating.ID = r.nextID
	r.nextID++
	rating.CreatedAt = time.Now()
	rating.UpdatedAt = rating.CreatedAt
	r.ratings[key] = rating
	return nil
}

func (r *fakeRatingRepo) GetByUserAndVideo(_ context.Context, userID, videoID int64) (*models.Rating, error) {
	rating, ok := r.ratings[ratingKey(videoID, userID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rating, nil
}

func (r *fakeRatingRepo) GetByVideo(_ context.Context, videoID int64) ([]models.Rating, error) {
	list := make([]models.Rating, 0)
	for _, rating := range r.ratings {
		if rating.VideoID == videoID {
			list = append(list, *rating)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *fakeRatingRepo) Stats(_ context.Context, videoID int64) (float64, int64, error) {
	var sum, count int64
	for _, rating := range r.ratings {
		if rating.VideoID == videoID {
			sum += int64(rating.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

// fakeBlobStorage records the upload and hands back a deterministic URL.
type fakeBlobStorage struct {
	lastFileName string
	uploads      int
	err          error
}

func (b *fakeBlobStorage) Upload(_ context.Context, _ io.Reader, fileName string) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.lastFileName = fileName
	b.uploads++
	return "https://blobs.example.com/" + fileName, nil
}
