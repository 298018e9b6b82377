package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/raushankrgupta/carma-scraper/config"
)

// chunkSize bounds how much of an image body is held in memory at once
const chunkSize = 32 * 1024

// ImageJob is one image to fetch and the file name to store it under
type ImageJob struct {
	URL      string
	Filename string
}

// Downloader saves card images into a single local directory
type Downloader struct {
	Client        *http.Client
	UserAgent     string
	Dir           string
	Workers       int
	ConvertToJPEG bool
}

func NewDownloader(client *http.Client, cfg config.Config) *Downloader {
	return &Downloader{
		Client:        client,
		UserAgent:     cfg.UserAgent,
		Dir:           cfg.ImageDir,
		Workers:       cfg.DownloadWorkers,
		ConvertToJPEG: cfg.ConvertToJPEG,
	}
}

// DownloadImages downloads every job and returns a map of file name -> local path
// for the ones that succeeded. A failed job is logged and never stops the others.
// With one worker the jobs run strictly in order.
func (d *Downloader) DownloadImages(ctx context.Context, jobs []ImageJob) map[string]string {
	saved := make(map[string]string)
	if len(jobs) == 0 {
		return saved
	}

	if d.Workers <= 1 {
		for _, job := range jobs {
			if path, err := d.DownloadImage(ctx, job.URL, job.Filename); err == nil {
				saved[job.Filename] = path
			}
		}
		return saved
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, d.Workers)

	for _, job := range jobs {
		wg.Add(1)
		go func(job ImageJob) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire token
			defer func() { <-semaphore }() // Release token

			path, err := d.DownloadImage(ctx, job.URL, job.Filename)
			if err != nil {
				return
			}
			mu.Lock()
			saved[job.Filename] = path
			mu.Unlock()
		}(job)
	}

	wg.Wait()
	return saved
}

// DownloadImage fetches imageURL and writes it to <Dir>/<filename>, replacing any previous file.
// The error is also logged so callers are free to ignore it.
func (d *Downloader) DownloadImage(ctx context.Context, imageURL, filename string) (string, error) {
	path, err := d.downloadImage(ctx, imageURL, filename)
	if err != nil {
		log.Printf("[Downloader] Error downloading image %s: %v", imageURL, err)
		return "", err
	}
	log.Printf("[Downloader] Downloaded image: %s", path)
	return path, nil
}

func (d *Downloader) downloadImage(ctx context.Context, imageURL, filename string) (string, error) {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	path := filepath.Join(d.Dir, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", d.UserAgent)

	resp, err := d.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	if err := writeStream(path, resp.Body); err != nil {
		return "", err
	}

	if d.ConvertToJPEG {
		if err := ConvertToJPEG(path); err != nil {
			log.Printf("[Downloader] Keeping original bytes for %s: %v", path, err)
		}
	}

	if absPath, err := filepath.Abs(path); err == nil {
		return absPath, nil
	}
	return path, nil
}

// writeStream copies r into path through a fixed-size buffer. A partial file is removed on error.
func writeStream(path string, r io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.CopyBuffer(out, r, make([]byte, chunkSize)); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}

	return out.Close()
}
