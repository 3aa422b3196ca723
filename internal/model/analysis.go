package model

import "time"

type AnalysisStatus string

const (
	AnalysisStatusPendingPayment AnalysisStatus = "pending_payment"
	AnalysisStatusProcessing     AnalysisStatus = "processing"
	AnalysisStatusCompleted      AnalysisStatus = "completed"
	AnalysisStatusFailed         AnalysisStatus = "failed"
)

// Analysis types
const (
	AnalysisBasic         = "basic"
	AnalysisDetailed      = "detailed"
	AnalysisComprehensive = "comprehensive"
)

// Analysis is a paid AI analysis request tracked by the analysis backend
type Analysis struct {
	ID              string          `json:"id"`
	Filename        string          `json:"filename"`
	OriginalName    string          `json:"originalName"`
	FilePath        string          `json:"filePath"`
	AnalysisType    string          `json:"analysisType"`
	PatientID       string          `json:"patientId"`
	WalletAddress   string          `json:"walletAddress"`
	Status          AnalysisStatus  `json:"status"`
	UploadTime      time.Time       `json:"uploadTime"`
	Price           string          `json:"price"`
	TransactionHash string          `json:"transactionHash,omitempty"`
	PaymentTime     *time.Time      `json:"paymentTime,omitempty"`
	CompletionTime  *time.Time      `json:"completionTime,omitempty"`
	Result          *AnalysisResult `json:"result,omitempty"`
}

type RiskFactor struct {
	Factor      string `json:"factor"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

type AnalysisResult struct {
	Analysis            string       `json:"analysis"`
	Confidence          float64      `json:"confidence"`
	Recommendations     []string     `json:"recommendations"`
	RiskFactors         []RiskFactor `json:"riskFactors"`
	FollowUpSuggestions []string     `json:"followUpSuggestions"`
	Disclaimer          string       `json:"disclaimer"`
}

// AnalysisPrices in native currency units (SHM)
var AnalysisPrices = map[string]string{
	AnalysisBasic:         "0.1",
	AnalysisDetailed:      "0.25",
	AnalysisComprehensive: "0.5",
}
