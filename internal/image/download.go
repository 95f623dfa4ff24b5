package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/youruser/qrgrid/internal/util"
)

// DownloadLogo fetches and decodes the logo referenced by ref. Google
// Drive sharing links are resolved to their direct-download form first.
// Any fetch or decode failure is reported as ErrInvalidLogo.
func DownloadLogo(ctx context.Context, ref string) (image.Image, error) {
	body, err := util.GetBytes(ctx, ResolveLogoURL(ref))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrInvalidLogo, ref, err)
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidLogo, ref, err)
	}
	return img, nil
}

// ResolveLogoURL turns a Google Drive sharing link into a direct-download
// URL and passes every other reference through unchanged. The file ID is
// taken from the "id" query parameter when present, otherwise from the
// path of the /file/d/<id>/... form.
func ResolveLogoURL(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.Hostname() != "drive.google.com" {
		return ref
	}
	if id := u.Query().Get("id"); id != "" {
		return driveDownloadURL(id)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) >= 3 {
		return driveDownloadURL(parts[2])
	}
	return ref
}

func driveDownloadURL(id string) string {
	return "https://drive.google.com/uc?id=" + id
}
