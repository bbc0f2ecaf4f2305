package Array_View

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"Array_View/singleflight"
)

var (
	groupsMu sync.RWMutex
	groups   = make(map[string]*Group)
)

// ErrKeyRequired 键不能为空错误
var ErrKeyRequired = errors.New("key is required")

// ErrValueRequired 值不能为空错误
var ErrValueRequired = errors.New("value is required")

// ErrGroupClosed 组已关闭错误
var ErrGroupClosed = errors.New("group closed")

// Builder 按键构造视图原始数据的回调接口
//
// Builder produces the raw bytes a view is materialized from.
type Builder interface {
	Build(ctx context.Context, key string) ([]byte, error)
}

// BuilderFunc 函数类型实现Builder接口
type BuilderFunc func(ctx context.Context, key string) ([]byte, error)

// Build 实现Builder接口
func (f BuilderFunc) Build(ctx context.Context, key string) ([]byte, error) { return f(ctx, key) }

// Group 是一个按需物化视图的命名空间
//
// Group is a namespace of lazily materialized byte views: a Builder produces
// raw bytes for a key, concurrent builds are deduplicated, and the resulting
// immutable view is cached and shared by every caller.
type Group struct {
	name       string
	builder    Builder
	mainCache  *Cache
	loader     *singleflight.Group
	expiration time.Duration // 视图过期时间,0表示永不过期
	closed     int32         // 是否关闭
	stats      groupStats    // 统计信息
}

// groupStats 保存组的统计信息
type groupStats struct {
	loads         int64 // 构建次数
	localHits     int64 // 缓存命中次数
	localMisses   int64 // 缓存未命中次数
	builderHits   int64 // 构建成功次数
	builderErrors int64 // 构建失败次数
	loadDuration  int64 // 构建总耗时
}

// GroupOption 视图组配置项
type GroupOption func(*Group)

// WithExpiration 设置视图过期时间
func WithExpiration(expiration time.Duration) GroupOption {
	return func(g *Group) {
		g.expiration = expiration
	}
}

// WithCacheOptions 设置缓存选项
func WithCacheOptions(opts CacheOptions) GroupOption {
	return func(g *Group) {
		g.mainCache = NewCache(opts)
	}
}

// NewGroup 创建一个新的Group实例
func NewGroup(name string, cacheBytes int64, builder Builder, opts ...GroupOption) *Group {
	if builder == nil {
		panic("nil Builder")
	}
	cacheOpts := DefaultCacheOptions()
	cacheOpts.MaxBytes = cacheBytes
	g := &Group{
		name:      name,
		builder:   builder,
		mainCache: NewCache(cacheOpts),
		loader:    &singleflight.Group{},
	}

	for _, opt := range opts {
		opt(g)
	}

	groupsMu.Lock()
	defer groupsMu.Unlock()

	if _, dup := groups[name]; dup {
		panic("duplicate registration of group " + name)
	}

	groups[name] = g
	logrus.Infof("view group %s created with cacheBytes= %d,expiration= %s", name, cacheBytes, g.expiration)
	return g
}

// GetGroup 获取指定名称的视图组
func GetGroup(name string) *Group {
	groupsMu.RLock()
	defer groupsMu.RUnlock()
	return groups[name]
}

// Get 获取键对应的视图
func (g *Group) Get(ctx context.Context, key string) (ByteView, error) {
	if atomic.LoadInt32(&g.closed) == 1 {
		return ByteView{}, ErrGroupClosed
	}

	if key == "" {
		return ByteView{}, ErrKeyRequired
	}

	if v, ok := g.mainCache.Get(key); ok {
		atomic.AddInt64(&g.stats.localHits, 1)
		return v, nil
	}
	atomic.AddInt64(&g.stats.localMisses, 1)
	return g.load(ctx, key)
}

// Set 直接写入一个视图,绕过Builder
func (g *Group) Set(ctx context.Context, key string, value []byte) error {
	if atomic.LoadInt32(&g.closed) == 1 {
		return ErrGroupClosed
	}

	if key == "" {
		return ErrKeyRequired
	}
	if len(value) == 0 {
		return ErrValueRequired
	}

	// 写入前拷贝一次,之后视图与调用方缓冲区互不影响
	view := BytesOf(value)

	if g.expiration > 0 {
		g.mainCache.AddWithExpiration(key, view, time.Now().Add(g.expiration))
	} else {
		g.mainCache.Add(key, view)
	}
	return nil
}

// Delete 删除键对应的视图
func (g *Group) Delete(key string) bool {
	if atomic.LoadInt32(&g.closed) == 1 {
		return false
	}
	if key == "" {
		return false
	}
	return g.mainCache.Delete(key)
}

// Clear 清空视图缓存
func (g *Group) Clear() {
	if atomic.LoadInt32(&g.closed) == 1 {
		return
	}
	g.mainCache.Clear()
	logrus.Infof("view group %s cleared", g.name)
}

// Close 关闭组并释放资源
func (g *Group) Close() error {
	if !atomic.CompareAndSwapInt32(&g.closed, 0, 1) {
		return nil
	}

	if g.mainCache != nil {
		g.mainCache.Close()
	}

	groupsMu.Lock()
	defer groupsMu.Unlock()
	delete(groups, g.name)
	logrus.Infof("view group %s closed", g.name)
	return nil
}

// load 通过Builder构建视图
func (g *Group) load(ctx context.Context, key string) (value ByteView, err error) {
	// 使用singleflight.Group进行并发控制
	startTime := time.Now()
	viewi, err := g.loader.Do(key, func() (interface{}, error) { return g.build(ctx, key) })

	loadDuration := time.Since(startTime).Nanoseconds()
	atomic.AddInt64(&g.stats.loadDuration, loadDuration)
	atomic.AddInt64(&g.stats.loads, 1)

	if err != nil {
		atomic.AddInt64(&g.stats.builderErrors, 1)
		return ByteView{}, err
	}
	view := viewi.(ByteView)

	if g.expiration > 0 {
		g.mainCache.AddWithExpiration(key, view, time.Now().Add(g.expiration))
	} else {
		g.mainCache.Add(key, view)
	}
	return view, nil
}

// build 实际构建视图数据的方法
func (g *Group) build(ctx context.Context, key string) (interface{}, error) {
	bytes, err := g.builder.Build(ctx, key)
	if err != nil {
		logrus.Warnf("builder for group %s failed on key %s: %v", g.name, key, err)
		return ByteView{}, fmt.Errorf("builder failed: %v", err)
	}
	atomic.AddInt64(&g.stats.builderHits, 1)
	return BytesOf(bytes), nil
}

// Stats 获取视图组统计信息
func (g *Group) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"name":           g.name,
		"closed":         atomic.LoadInt32(&g.closed) == 1,
		"expiration":     g.expiration,
		"loads":          atomic.LoadInt64(&g.stats.loads),
		"local_hits":     atomic.LoadInt64(&g.stats.localHits),
		"local_misses":   atomic.LoadInt64(&g.stats.localMisses),
		"builder_hits":   atomic.LoadInt64(&g.stats.builderHits),
		"builder_errors": atomic.LoadInt64(&g.stats.builderErrors),
	}
	totalGets := atomic.LoadInt64(&g.stats.localHits) + atomic.LoadInt64(&g.stats.localMisses)
	if totalGets > 0 {
		stats["local_hit_rate"] = float64(atomic.LoadInt64(&g.stats.localHits)) / float64(totalGets)
	}

	totalLoads := atomic.LoadInt64(&g.stats.builderHits) + atomic.LoadInt64(&g.stats.builderErrors)
	if totalLoads > 0 {
		stats["builder_hit_rate"] = float64(atomic.LoadInt64(&g.stats.builderHits)) / float64(totalLoads)
	}

	if g.mainCache != nil {
		cacheStats := g.mainCache.Stats()
		for k, v := range cacheStats {
			stats["cache_"+k] = v
		}
	}
	return stats
}

// ListGroups 返回所有视图组的名称
func ListGroups() []string {
	groupsMu.RLock()
	defer groupsMu.RUnlock()
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	return names
}

// DestroyGroup 销毁指定名称的视图组
func DestroyGroup(name string) bool {
	groupsMu.RLock()
	g, ok := groups[name]
	groupsMu.RUnlock()

	if ok {
		g.Close()
		logrus.Infof("view group %s destroyed", name)
		return true
	}
	return false
}
