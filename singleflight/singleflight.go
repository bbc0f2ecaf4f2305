// Package singleflight suppresses duplicate concurrent builds of the same key.
package singleflight

import "sync"

// call 代表正在进行或已完成的构建
type call struct {
	wg  sync.WaitGroup // 阻塞其他等待者，直到fn执行完毕
	val interface{}    // fn的返回值
	err error          // fn返回的错误
}

// Group deduplicates calls by key: while one build for a key is in flight,
// every other caller for that key waits and shares its result.
type Group struct {
	calls sync.Map // key -> *call
}

// Do 针对相同的key,保证并发调用Do()时fn只会执行一次
func (g *Group) Do(key string, fn func() (interface{}, error)) (interface{}, error) {
	if v, ok := g.calls.Load(key); ok {
		c := v.(*call)
		c.wg.Wait()
		return c.val, c.err
	}

	c := &call{}
	c.wg.Add(1)
	if v, loaded := g.calls.LoadOrStore(key, c); loaded {
		// Someone registered between the Load and here; wait on theirs.
		prev := v.(*call)
		prev.wg.Wait()
		return prev.val, prev.err
	}

	c.val, c.err = fn()
	c.wg.Done()

	// 结束后把call从map中删除(避免内存泄漏)
	g.calls.Delete(key)

	return c.val, c.err
}
