package services

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"liveTrading/internal/interfaces"
)

type FileManagerService struct {
	fileManager interfaces.FileManager
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
	}
}

// Upload stores the file under a timestamped name derived from the owner id
// and returns its public URL.
func (fms *FileManagerService) Upload(ownerID, originalName string, file io.Reader, fileSize int64, contentType, bucketName string) (string, error) {
	fileName := fmt.Sprintf("%s_%d%s", ownerID, time.Now().UnixNano(), filepath.Ext(originalName))
	return fms.fileManager.UploadFile(fileName, file, fileSize, contentType, bucketName)
}
