package dto

// PeriodQuery carries the optional reporting window token. Resolution
// and fallback happen in the application layer, so any string binds.
type PeriodQuery struct {
	Period string `form:"period"`
}

// SalesReportQuery carries the composite report parameters. From and To
// default to the last 30 days when omitted.
type SalesReportQuery struct {
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}
