// Package dto defines the XML envelopes returned by the MOLIT trade API.
package dto

// TradeResponse is the body of getRTMSDataSvcAptTradeDev. The gateway answers
// auth/quota failures with an OpenAPI_ServiceResponse root instead, which lands
// in CmmMsgHeader; no XMLName is pinned so both roots decode into this struct.
type TradeResponse struct {
	Header struct {
		ResultCode string `xml:"resultCode"`
		ResultMsg  string `xml:"resultMsg"`
	} `xml:"header"`
	Body struct {
		Items      []TradeItem `xml:"items>item"`
		NumOfRows  int         `xml:"numOfRows"`
		PageNo     int         `xml:"pageNo"`
		TotalCount int         `xml:"totalCount"`
	} `xml:"body"`
	CmmMsgHeader struct {
		ErrMsg           string `xml:"errMsg"`
		ReturnAuthMsg    string `xml:"returnAuthMsg"`
		ReturnReasonCode string `xml:"returnReasonCode"`
	} `xml:"cmmMsgHeader"`
}

// TradeItem is one <item> element.
type TradeItem struct {
	AptNm      string `xml:"aptNm"`
	AptDong    string `xml:"aptDong"`
	Floor      string `xml:"floor"`
	DealAmount string `xml:"dealAmount"`
	ExcluUseAr string `xml:"excluUseAr"`
	DealYear   string `xml:"dealYear"`
	DealMonth  string `xml:"dealMonth"`
	DealDay    string `xml:"dealDay"`
	BuildYear  string `xml:"buildYear"`
	Jibun      string `xml:"jibun"`
	UmdNm      string `xml:"umdNm"`
}
