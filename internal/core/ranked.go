package core

// 有序链表 + 哈希索引 + 同计数段向量，Append/Expire 均摊 O(1)，TopK O(k)

// node 计数链表节点；链表按 count 非降序排列，tail 一侧是当前最重的流
type node struct {
	id         FlowID
	count      int
	prev, next *node
}

// countRange 同计数段：first/last 指向链表中该计数连续段的两端（含）
type countRange struct {
	first, last *node
}

func (c *countRange) empty() bool { return c.first == nil }
func (c *countRange) one() bool   { return c.first != nil && c.first == c.last }
func (c *countRange) clear()      { c.first, c.last = nil, nil }

// Ranked 精确的频次排序多重集。容量 W 是窗口内条目总数的上界，
// 因此单个流的计数不会超过 W，段向量可以按计数直接下标。
type Ranked struct {
	capacity   int
	head, tail *node
	index      map[FlowID]*node
	ranges     []countRange // 下标 0..capacity，0 号段恒空
}

func NewRanked(capacity int) *Ranked {
	if capacity < 1 {
		panic("core: ranked capacity must be positive")
	}
	return &Ranked{
		capacity: capacity,
		index:    make(map[FlowID]*node, capacity),
		ranges:   make([]countRange, capacity+1),
	}
}

// Append 记录 id 的一次入队
func (r *Ranked) Append(id FlowID) {
	n, ok := r.index[id]
	if !ok {
		// 新流从表头进入，计数 1 的最低合法位置
		n = &node{id: id, count: 1}
		r.insertBefore(n, r.head)
		r.enterRange(n)
		r.index[id] = n
		return
	}
	// 已有流：摘下节点，计数 +1 后插到原计数段之后的位置，
	// 即新计数段的低位端
	anchor := r.ranges[n.count].last.next // 可能为 nil（表尾）
	r.leaveRange(n)
	r.detach(n)
	n.count++
	r.insertBefore(n, anchor)
	r.enterRange(n)
}

// Expire 记录 id 的一次出队；调用方保证 id 当前在窗口内
func (r *Ranked) Expire(id FlowID) {
	n, ok := r.index[id]
	if !ok {
		panic("core: expire of untracked flow " + id)
	}
	// 降级后的落点取决于原计数段左邻：先记住段首的前驱再动链表
	first := r.ranges[n.count].first
	atHead := first == r.head
	var prevOfFirst *node
	if !atHead {
		prevOfFirst = first.prev
	}
	r.leaveRange(n)
	r.detach(n)
	n.count--
	if n.count == 0 {
		delete(r.index, id)
		return
	}
	switch {
	case atHead:
		// 原段左边没有任何节点，降级节点回到表头
		r.insertBefore(n, r.head)
	case prevOfFirst.count == n.count:
		// 左邻段计数恰为 c-1，并入其低位端
		r.insertBefore(n, r.ranges[n.count].first)
	default:
		// 左邻段计数更小，在其后自成单节点段
		r.insertBefore(n, prevOfFirst.next)
	}
	r.enterRange(n)
}

// TopK 自表尾向前收集 k 个 (flow, count)，计数非增；
// k 超过在榜流数时返回全量
func (r *Ranked) TopK(k int) []RankItem {
	if k <= 0 {
		return nil
	}
	return r.AppendTopK(make([]RankItem, 0, min(k, len(r.index))), k)
}

// AppendTopK 同 TopK，但把结果追加到 dst
func (r *Ranked) AppendTopK(dst []RankItem, k int) []RankItem {
	for n, taken := r.tail, 0; n != nil && taken < k; n, taken = n.prev, taken+1 {
		dst = append(dst, RankItem{FlowID: n.id, Count: n.count})
	}
	return dst
}

// Counts 导出当前计数字典
func (r *Ranked) Counts() map[FlowID]int {
	out := make(map[FlowID]int, len(r.index))
	for id, n := range r.index {
		out[id] = n.count
	}
	return out
}

// Len 返回在榜的流数量
func (r *Ranked) Len() int { return len(r.index) }

// Capacity 返回构造时的窗口容量
func (r *Ranked) Capacity() int { return r.capacity }

// insertBefore 将 n 插到 at 之前；at 为 nil 表示插到表尾
func (r *Ranked) insertBefore(n, at *node) {
	if at == nil {
		n.prev = r.tail
		n.next = nil
		if r.tail != nil {
			r.tail.next = n
		} else {
			r.head = n
		}
		r.tail = n
		return
	}
	n.prev = at.prev
	n.next = at
	if at.prev != nil {
		at.prev.next = n
	} else {
		r.head = n
	}
	at.prev = n
}

func (r *Ranked) detach(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		r.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		r.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

// enterRange 节点进入其计数对应的段；新节点总是落在段的低位端
func (r *Ranked) enterRange(n *node) {
	rg := &r.ranges[n.count]
	if rg.empty() {
		rg.first, rg.last = n, n
		return
	}
	rg.first = n
}

// leaveRange 节点脱离所在段；只有两端需要修正，中间节点摘除不影响段界
func (r *Ranked) leaveRange(n *node) {
	rg := &r.ranges[n.count]
	switch {
	case rg.one():
		rg.clear()
	case n == rg.first:
		rg.first = n.next
	case n == rg.last:
		rg.last = n.prev
	}
}
