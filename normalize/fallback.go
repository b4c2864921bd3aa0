package normalize

// 上游行的同一语义字段历史上有多个名字（多版 schema 并存）。
// 回退链把“优先 A，其次 B，再次 C”写成显式的有序抽取器列表，
// 左到右求值、首个有定义者胜出，可脱离管线单测。

// Extractor 从原始行抽取一个候选值；第二返回值为 false 表示未定义。
type Extractor func(raw map[string]any) (any, bool)

// Field 返回按 key 直接取值的抽取器；nil 值视为未定义。
func Field(key string) Extractor {
	return func(raw map[string]any) (any, bool) {
		v, ok := raw[key]
		if !ok || v == nil {
			return nil, false
		}
		return v, true
	}
}

// Chain 是一条首个有定义者胜出的回退链。
type Chain []Extractor

// FieldChain 以字段名列表构造回退链。
func FieldChain(keys ...string) Chain {
	c := make(Chain, 0, len(keys))
	for _, k := range keys {
		c = append(c, Field(k))
	}
	return c
}

// Extract 左到右求值，返回第一个有定义的候选值。
func (c Chain) Extract(raw map[string]any) (any, bool) {
	for _, e := range c {
		if v, ok := e(raw); ok {
			return v, true
		}
	}
	return nil, false
}
