package helper

import (
	"context"
	"fmt"
	"io"
	"log"
	"olympic_ticketing/config"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Storage persists an image under folder/publicID and returns a retrievable
// URL. Cloudinary in production, MemoryStorage in tests.
type Storage interface {
	Upload(ctx context.Context, folder, publicID string, r io.Reader) (string, error)
}

// Store is set at startup.
var Store Storage

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func InitCloudinary() *CloudinaryStorage {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return &CloudinaryStorage{cld: cld}
}

func (s *CloudinaryStorage) Upload(ctx context.Context, folder, publicID string, r io.Reader) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// MemoryStorage collects uploads in a map. Test use only.
type MemoryStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Objects: map[string][]byte{}}
}

func (s *MemoryStorage) Upload(ctx context.Context, folder, publicID string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Never overwrite: a repeated upload under the same name gets a fresh
	// reference and the previous object is simply orphaned.
	name := fmt.Sprintf("%s/%s", folder, publicID)
	for i := 1; ; i++ {
		if _, ok := s.Objects[name]; !ok {
			break
		}
		name = fmt.Sprintf("%s/%s_%d", folder, publicID, i)
	}
	s.Objects[name] = data
	return "memory://" + name, nil
}

func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Objects)
}
