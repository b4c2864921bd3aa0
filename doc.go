// Package gemkit 是一个冷门精品游戏排序工具包（Hidden-Gem Kit）。
//
// 设计要点：
// - Pipeline-first: 排序逻辑通过 Node 串联（Source → Normalize → Filter → Rank → ReRank → PostProcess）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - Node 可扩展: 自定义 Node 即可插拔扩展（本地计算或远端协作方均可）
package gemkit

import "github.com/rushteam/gemkit/pipeline"

// 轻量 facade：便于用户直接 import "gemkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindSource      = pipeline.KindSource
	KindNormalize   = pipeline.KindNormalize
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
