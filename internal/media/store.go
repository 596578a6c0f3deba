/**
* Name: 			store.go
* Description: 		업로드 이미지 저장 및 크기별 변형 생성
* Workflow: 		디코드 -> 최대 크기 축소 -> icon/normal/large 생성 -> 용량 목표까지 JPEG 품질 조정 -> MEDIA_ROOT 기록
 */

package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	"PortfolioSite/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxDimension = 1920
	IconSize     = 64
	NormalSize   = 512
	LargeSize    = 1280

	initialQuality = 85
	minQuality     = 60
	qualityStep    = 5
	targetMaxBytes = 500 * 1024

	maxUploadBytes = 20 << 20
)

var (
	ErrUnknownKind  = errors.New("unknown media kind")
	ErrInvalidImage = errors.New("invalid image")
	ErrTooLarge     = errors.New("upload too large")
)

// Kinds 업로드 가능한 디렉터리 목록
var Kinds = map[string]bool{
	"avatars":      true,
	"skill_photos": true,
	"projects":     true,
}

type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("media.NewStore(): failed to create media root: %v", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

// SaveImage 이미지를 디코드해 원본과 변형을 저장하고 MEDIA_ROOT 기준 상대 경로 반환
func (s *Store) SaveImage(kind string, r io.Reader) (models.MediaSet, error) {
	if !Kinds[kind] {
		return models.MediaSet{}, ErrUnknownKind
	}

	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return models.MediaSet{}, err
	}
	if len(data) > maxUploadBytes {
		return models.MediaSet{}, ErrTooLarge
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return models.MediaSet{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	original := flatten(fit(src, MaxDimension))

	if err := os.MkdirAll(filepath.Join(s.root, kind), 0755); err != nil {
		return models.MediaSet{}, err
	}

	name := uuid.NewString()
	set := models.MediaSet{
		Original: path.Join(kind, name+".jpg"),
		Icon:     path.Join(kind, name+"_icon.jpg"),
		Normal:   path.Join(kind, name+"_normal.jpg"),
		Large:    path.Join(kind, name+"_large.jpg"),
	}

	variants := []struct {
		rel string
		img image.Image
	}{
		{set.Original, original},
		{set.Icon, fit(original, IconSize)},
		{set.Normal, fit(original, NormalSize)},
		{set.Large, fit(original, LargeSize)},
	}
	for _, v := range variants {
		if err := s.writeJPEG(v.rel, v.img); err != nil {
			s.Delete(set)
			return models.MediaSet{}, err
		}
	}

	zap.L().Info("Store.SaveImage(): stored",
		zap.String("kind", kind),
		zap.String("format", format),
		zap.String("original", set.Original),
	)
	return set, nil
}

// Delete 변형 파일 삭제, 없는 파일은 무시
func (s *Store) Delete(set models.MediaSet) {
	for _, rel := range []string{set.Original, set.Icon, set.Normal, set.Large} {
		if rel == "" {
			continue
		}
		full, err := s.resolve(rel)
		if err != nil {
			continue
		}
		if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
			zap.L().Warn("Store.Delete(): remove failed", zap.String("path", rel), zap.Error(err))
		}
	}
}

// resolve 상대 경로가 root 밖으로 나가지 않도록 확인
func (s *Store) resolve(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("media path escapes root: %s", rel)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *Store) writeJPEG(rel string, img image.Image) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	data, err := encodeJPEG(img)
	if err != nil {
		return err
	}
	return os.WriteFile(full, data, 0644)
}

// encodeJPEG 목표 용량 이하가 되거나 최저 품질에 닿을 때까지 품질을 낮춤
func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	for quality := initialQuality; ; quality -= qualityStep {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, err
		}
		if buf.Len() <= targetMaxBytes || quality-qualityStep < minQuality {
			return buf.Bytes(), nil
		}
	}
}

// fit 긴 변이 max 이하가 되도록 비율 유지 축소. 확대는 하지 않음
func fit(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	nw, nh := max, max
	if w >= h {
		nh = h * max / w
	} else {
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// flatten 투명 영역을 흰 배경으로 합성
func flatten(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}
