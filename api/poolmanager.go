package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/LegalDragon/slidecast/api/client"
	"github.com/LegalDragon/slidecast/config"
	"github.com/LegalDragon/slidecast/util"
)

// PoolManager keeps the local shared media pool in sync with an S3 bucket.
// Files present remotely but not locally are downloaded and registered;
// local files gone from the bucket are removed and deregistered.
type PoolManager struct {
	client *s3.Client

	bucket string
	prefix string

	outputPath string
	interval   time.Duration

	mediaClient *client.MediaClient

	Updated chan bool
}

func NewPoolManager(cfg *config.Config, serverURL string) (*PoolManager, error) {
	if cfg.AWS.Bucket == "" {
		return nil, fmt.Errorf("no s3 bucket configured for shared pool sync")
	}

	outputPath := filepath.Join(cfg.RootPath, "assets")

	ctxCfg, cancelCfg := context.WithTimeout(context.Background(), 3*time.Second)
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctxCfg,
		awsconfig.WithSharedConfigProfile(cfg.AWS.Profile),
	)
	cancelCfg()
	if err != nil {
		return nil, err
	}

	interval := time.Duration(cfg.AWS.SyncIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	return &PoolManager{
		client:      s3.NewFromConfig(awsCfg),
		bucket:      cfg.AWS.Bucket,
		prefix:      cfg.AWS.Prefix,
		outputPath:  outputPath,
		interval:    interval,
		mediaClient: client.NewMediaClient(serverURL),
		Updated:     make(chan bool),
	}, nil
}

func (p *PoolManager) GetS3Objects(ctx context.Context) ([]s3types.Object, error) {
	output, err := p.client.ListObjectsV2(
		ctx,
		&s3.ListObjectsV2Input{
			Bucket: aws.String(p.bucket),
			Prefix: aws.String(p.prefix),
		},
	)
	if err != nil {
		return nil, err
	}

	return output.Contents, nil
}

func (p *PoolManager) DownloadObject(ctx context.Context, key string) error {
	downloader := manager.NewDownloader(p.client)

	name := filepath.Base(key)
	f, err := os.Create(filepath.Join(p.outputPath, name))
	if err != nil {
		return fmt.Errorf("unable to create file for s3 download, %s, %w", name, err)
	}
	defer f.Close()

	if _, err := downloader.Download(ctx, f, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("unable to download object from s3, %s, %w", key, err)
	}
	return nil
}

func (p *PoolManager) getLocalFiles() (mapset.Set[string], error) {
	dirs, err := os.ReadDir(p.outputPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory, %s, %w", p.outputPath, err)
	}

	localFiles := mapset.NewSet[string]()
	for dir := range slices.Values(dirs) {
		name := dir.Name()
		if util.MediaKind(name) == "" {
			continue
		}
		localFiles.Add(name)
	}

	if localFiles.Cardinality() == 0 {
		slog.Info("no local pool files found")
	}
	return localFiles, nil
}

// remoteKeys maps base names back to their full object keys so downloads
// keep working under a non-empty prefix.
func (p *PoolManager) getRemoteFiles(ctx context.Context) (mapset.Set[string], map[string]string, error) {
	remoteFiles := mapset.NewSet[string]()
	remoteKeys := make(map[string]string)
	objects, err := p.GetS3Objects(ctx)
	if err != nil {
		return nil, nil, err
	}
	for object := range slices.Values(objects) {
		key := aws.ToString(object.Key)
		if strings.HasSuffix(key, "/") {
			continue
		}
		name := filepath.Base(key)
		if util.MediaKind(name) == "" {
			continue
		}
		remoteFiles.Add(name)
		remoteKeys[name] = key
	}

	if remoteFiles.Cardinality() == 0 {
		slog.Info("no remote pool files found")
	}
	return remoteFiles, remoteKeys, nil
}

func (p *PoolManager) SyncPool(ctx context.Context) error {
	if err := os.MkdirAll(p.outputPath, 0o755); err != nil {
		return fmt.Errorf("unable to create pool directory, %s, %w", p.outputPath, err)
	}

	localFiles, err := p.getLocalFiles()
	if err != nil {
		return err
	}

	remoteFiles, remoteKeys, err := p.getRemoteFiles(ctx)
	if err != nil {
		return err
	}

	toDelete := localFiles.Difference(remoteFiles).ToSlice()
	toDownload := remoteFiles.Difference(localFiles).ToSlice()
	if len(toDelete) > 0 {
		slog.Info("deleting local pool files", "count", len(toDelete), "names", toDelete)
		for name := range slices.Values(toDelete) {
			if err := p.mediaClient.DeleteSharedMedia(name); err != nil {
				slog.Warn("unable to deregister pool media", "name", name, "error", err)
			}
			filePath := filepath.Join(p.outputPath, name)
			if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
				slog.Warn("unable to remove local pool file", "error", err)
			}
		}
	}
	if len(toDownload) > 0 {
		slog.Info("adding pool files", "count", len(toDownload), "names", toDownload)
		for name := range slices.Values(toDownload) {
			if err := p.DownloadObject(ctx, remoteKeys[name]); err != nil {
				slog.Warn("error while downloading s3 object", "name", name, "error", err)
				continue
			}

			if err := p.mediaClient.RegisterSharedMediaIfNotExists(name); err != nil {
				slog.Warn("error while registering pool media", "name", name, "error", err)
			}
		}
	}

	// Make sure every local pool file is registered even when nothing
	// changed remotely, covering files placed by hand.
	for _, name := range localFiles.Difference(mapset.NewSet(toDelete...)).ToSlice() {
		if err := p.mediaClient.RegisterSharedMediaIfNotExists(name); err != nil {
			slog.Warn("error while registering local pool media", "name", name, "error", err)
		}
	}

	if len(toDelete) > 0 || len(toDownload) > 0 {
		p.Updated <- true
	}
	return nil
}

func (p *PoolManager) Run() {
	ticker := time.NewTicker(p.interval)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	if err := p.SyncPool(ctx); err != nil {
		slog.Warn("error while syncing shared pool", "error", err)
	}
	cancel()

	for range ticker.C {
		ctx, cancel = context.WithTimeout(context.Background(), 30*time.Minute)
		if err := p.SyncPool(ctx); err != nil {
			slog.Warn("error while syncing shared pool", "error", err)
		}
		cancel()
	}
}
