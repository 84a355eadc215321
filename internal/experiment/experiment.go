package experiment

import (
	"fmt"

	"github.com/ErronZrz/flow-rank/internal/core"
)

// AlgType 可选的重流统计算法
type AlgType string

const (
	// AlgNone 只让分组过队列，不做任何统计
	AlgNone AlgType = "none"
	// AlgBaseline 哈希表计数 + 排序
	AlgBaseline AlgType = "baseline"
	// AlgRanked 频次排序多重集
	AlgRanked AlgType = "ranked"
)

// Params 一次实验的全部输入参数
type Params struct {
	Number    int     `json:"number"`
	SeqSize   int     `json:"seq_size"`
	FlowCount int     `json:"flow_count"`
	QueueSize int     `json:"queue_size"`
	K         int     `json:"k"`
	Seed      uint64  `json:"seed"`
	Alg       AlgType `json:"alg"`
	Dist      Dist    `json:"dist"`
	Validate  bool    `json:"validate"`
}

// Check 在创建任何核心实例之前校验参数组合
func (p Params) Check() error {
	if p.SeqSize < 1 {
		return fmt.Errorf("experiment: seq size must be positive, got %d", p.SeqSize)
	}
	if p.FlowCount < 1 {
		return fmt.Errorf("experiment: flow count must be positive, got %d", p.FlowCount)
	}
	if p.QueueSize < 1 {
		return fmt.Errorf("experiment: queue size must be positive, got %d", p.QueueSize)
	}
	if p.K < 1 {
		return fmt.Errorf("experiment: k must be positive, got %d", p.K)
	}
	switch p.Alg {
	case AlgNone, AlgBaseline, AlgRanked:
	default:
		return fmt.Errorf("experiment: unknown algorithm %q", p.Alg)
	}
	switch p.Dist {
	case DistUniform, DistZipf, "":
	default:
		return fmt.Errorf("experiment: unknown distribution %q", p.Dist)
	}
	if p.Validate && p.Alg != AlgRanked {
		return fmt.Errorf("experiment: validation is only available with the ranked algorithm")
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("num=%d alg=%s queue=%d flows=%d seqsize=%d k=%d seed=%d dist=%s validate=%t",
		p.Number, p.Alg, p.QueueSize, p.FlowCount, p.SeqSize, p.K, p.Seed, p.dist(), p.Validate)
}

func (p Params) dist() Dist {
	if p.Dist == "" {
		return DistUniform
	}
	return p.Dist
}

// Experiment 驱动一条分组序列通过队列并喂给所选算法
type Experiment struct {
	params    Params
	gen       *Generator
	queue     *Fifo
	alg       core.Counter
	validator *Validator

	iteration int // 已执行的 Append/Expire 总数
	generated int // 已产生的分组数
	results   []core.RankItem
}

// New 组建一次实验；参数不合法时不会创建任何核心实例
func New(p Params) (*Experiment, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	gen, err := NewGenerator(p.FlowCount, p.Seed, p.dist())
	if err != nil {
		return nil, err
	}
	var alg core.Counter
	switch p.Alg {
	case AlgNone:
		alg = core.Nop{}
	case AlgBaseline:
		alg = core.NewBaseline()
	case AlgRanked:
		alg = core.NewRanked(p.QueueSize)
	}
	e := &Experiment{
		params:  p,
		gen:     gen,
		queue:   NewFifo(p.QueueSize),
		alg:     alg,
		results: make([]core.RankItem, 0, p.K),
	}
	if p.Validate {
		e.validator = NewValidator(alg, p.FlowCount)
	}
	return e, nil
}

// Run 执行均匀负载：填满队列，之后一出一进保持满载，
// 直到产生 SeqSize 个分组，最后清空队列
func (e *Experiment) Run() error {
	for e.queue.Len() < e.params.QueueSize && e.generated < e.params.SeqSize {
		if err := e.appendOne(); err != nil {
			return err
		}
	}
	for e.generated < e.params.SeqSize {
		if err := e.expireOne(); err != nil {
			return err
		}
		if err := e.appendOne(); err != nil {
			return err
		}
	}
	for e.queue.Len() > 0 {
		if err := e.expireOne(); err != nil {
			return err
		}
	}
	return nil
}

// Iteration 已执行的更新总数
func (e *Experiment) Iteration() int { return e.iteration }

// Results 最近一次 Append 之后的 top-k 查询结果
func (e *Experiment) Results() []core.RankItem { return e.results }

// appendOne 产生一个新分组：入队、喂给算法、查询 top-k
func (e *Experiment) appendOne() error {
	e.iteration++
	e.generated++
	id := e.gen.Next()
	e.queue.Push(id)
	e.alg.Append(id)
	e.results = e.alg.AppendTopK(e.results[:0], e.params.K)
	if e.validator != nil {
		e.validator.Append(id)
		return e.validator.Check(e.iteration)
	}
	return nil
}

// expireOne 让最老的分组离开队列
func (e *Experiment) expireOne() error {
	e.iteration++
	id := e.queue.Pop()
	e.alg.Expire(id)
	if e.validator != nil {
		e.validator.Expire(id)
		return e.validator.Check(e.iteration)
	}
	return nil
}
