package prompts

import "time"

const analysisContent = `You are an expert legal contract analyst. Analyze the provided contract and identify risks, ambiguities, and unfavorable terms.
Provide your analysis in Korean (한국어) with the following structure:

1. 위험 점수 (0-1 scale)
2. 주요 발견사항 (3-5 key findings with severity)
3. 협상 포인트
4. 권장사항

Focus on practical business risks and legal implications.

Key areas to examine:
- 책임 및 면책 조항
- 계약 해지 조건
- 손해배상 조항
- 지적재산권 조항
- 기밀유지 조항
- 분쟁 해결 방법
- 불공정한 조항
- 모호하거나 불명확한 표현`

const negotiationContent = `Based on the contract analysis, provide negotiation points in Korean with:

1. 우선순위 (high/medium/low)
2. 구체적인 수정 제안
3. 협상 근거와 논리
4. 대안 제시
5. 예상되는 상대방 반응

Format each negotiation point as:
{
  "issue": "문제 조항",
  "priority": "high|medium|low",
  "suggestedChange": "수정 제안",
  "rationale": "근거",
  "alternatives": ["대안1", "대안2"]
}`

const summaryContent = `Create an executive summary in Korean that:

1. 핵심 위험 요소 3줄 요약
2. 즉시 조치가 필요한 사항
3. 협상 우선순위
4. 예상 비용/리스크
5. 최종 권장사항

Keep it concise and business-focused.
Avoid legal jargon.
Use bullet points for clarity.`

const comparisonContent = `Compare the provided contract with standard industry practices:

1. 표준 조항과의 차이점
2. 누락된 중요 조항
3. 비정상적인 조건
4. 업계 관행 대비 평가

Provide specific examples and recommendations.`

// seededAt timestamps the built-in definitions once per process, so repeated
// Reset calls yield an identical set.
var seededAt = time.Now()

// Defaults returns the built-in prompt definitions used when no persisted
// registry state exists.
func Defaults() []Prompt {
	now := seededAt

	return []Prompt{
		{
			ID:           "contract-analysis",
			Name:         "계약서 분석 프롬프트",
			Description:  "계약서의 위험 요소, 모호한 조항, 불리한 조건을 분석하는 메인 프롬프트",
			Content:      analysisContent,
			Category:     CategoryAnalysis,
			Active:       true,
			LastModified: now,
		},
		{
			ID:           "negotiation-points",
			Name:         "협상 포인트 생성 프롬프트",
			Description:  "계약서 분석 후 협상 전략과 수정안을 제시하는 프롬프트",
			Content:      negotiationContent,
			Category:     CategoryNegotiation,
			Active:       true,
			LastModified: now,
		},
		{
			ID:           "executive-summary",
			Name:         "요약 보고서 프롬프트",
			Description:  "분석 결과를 경영진이 이해하기 쉽게 요약하는 프롬프트",
			Content:      summaryContent,
			Category:     CategorySummary,
			Active:       true,
			LastModified: now,
		},
		{
			ID:           "clause-comparison",
			Name:         "조항 비교 프롬프트",
			Description:  "표준 계약서와 비교하여 차이점을 분석하는 프롬프트",
			Content:      comparisonContent,
			Category:     CategoryAnalysis,
			Active:       false,
			LastModified: now,
		},
	}
}
