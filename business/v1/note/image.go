package note

import (
	"encoding/base64"
	"math"
	"strconv"

	"github.com/gabriel-vasile/mimetype"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// EncodeImage turns an upload into a self-contained data URL and the metadata kept with it
func EncodeImage(u ImageUpload) (string, ImageData) {
	detected := mimetype.Detect(u.Data).String()
	mime := u.MimeType
	if mime == "" || mime == "application/octet-stream" {
		mime = detected
	}

	url := "data:" + detected + ";base64," + base64.StdEncoding.EncodeToString(u.Data)
	return url, ImageData{
		FileName: u.FileName,
		FileSize: FormatFileSize(int64(len(u.Data))),
		MimeType: mime,
	}
}

// FormatFileSize renders a byte count with two decimals at most, e.g. "12.5 KB"
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
