package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// SequentialRotator is an io.Writer that rotates its log file once it
// exceeds maxSize bytes. Rotated files get a sequence suffix, oldest
// backups beyond maxBackups are removed.
type SequentialRotator struct {
	filename   string
	maxSize    int64
	maxBackups int

	mu   sync.Mutex
	file *os.File
	size int64
}

func NewSequentialRotator(filename string, maxSizeMB, maxBackups int) *SequentialRotator {
	return &SequentialRotator{
		filename:   filename,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
}

func (r *SequentialRotator) Write(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.openFile(); err != nil {
			return 0, err
		}
	}

	if r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *SequentialRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *SequentialRotator) openFile() error {
	if err := os.MkdirAll(filepath.Dir(r.filename), 0755); err != nil {
		return err
	}

	if info, err := os.Stat(r.filename); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	file, err := os.OpenFile(r.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	r.file = file
	return nil
}

func (r *SequentialRotator) rotate() error {
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			return err
		}
		r.file = nil
	}

	base := strings.TrimSuffix(r.filename, ".log")
	rotated := fmt.Sprintf("%s.%d.log", base, r.nextSequenceNumber())
	if err := os.Rename(r.filename, rotated); err != nil {
		return err
	}

	r.cleanupOldFiles()

	r.size = 0
	return r.openFile()
}

// nextSequenceNumber scans existing backups like "<base>.3.log" and
// returns the highest sequence plus one.
func (r *SequentialRotator) nextSequenceNumber() int {
	maxSeq := 0
	for _, file := range r.backupFiles() {
		if seq, ok := sequenceOf(file); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

func (r *SequentialRotator) cleanupOldFiles() {
	if r.maxBackups <= 0 {
		return
	}

	backups := r.backupFiles()
	if len(backups) <= r.maxBackups {
		return
	}

	// Lowest sequence numbers are the oldest files.
	for len(backups) > r.maxBackups {
		oldest := ""
		oldestSeq := 0
		for _, file := range backups {
			seq, ok := sequenceOf(file)
			if !ok {
				continue
			}
			if oldest == "" || seq < oldestSeq {
				oldest = file
				oldestSeq = seq
			}
		}
		if oldest == "" {
			return
		}
		_ = os.Remove(oldest)

		remaining := backups[:0]
		for _, file := range backups {
			if file != oldest {
				remaining = append(remaining, file)
			}
		}
		backups = remaining
	}
}

func (r *SequentialRotator) backupFiles() []string {
	dir := filepath.Dir(r.filename)
	base := strings.TrimSuffix(filepath.Base(r.filename), ".log")
	files, err := filepath.Glob(filepath.Join(dir, base+".*.log"))
	if err != nil {
		return nil
	}
	return files
}

func sequenceOf(file string) (int, bool) {
	parts := strings.Split(filepath.Base(file), ".")
	if len(parts) < 3 {
		return 0, false
	}
	seq, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return 0, false
	}
	return seq, true
}
