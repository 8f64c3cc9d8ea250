package preview

import (
	"fmt"
	"strings"
	"time"
)

// AddPreviewBanner inserts a fixed, non-removable banner right after the
// opening <body> tag, plus a responsive style block. Content before and
// after the body tag is left untouched.
func AddPreviewBanner(html, previewID, prospectName string, expiresAt time.Time) string {
	loc := bodyOpenRe.FindStringIndex(html)
	if loc == nil {
		return html
	}

	shortID := previewID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	banner := fmt.Sprintf(`
<!-- MORNINGSTAR PREVIEW BANNER -->
<div id="ms-preview-banner" style="
  position: fixed;
  top: 0; left: 0; right: 0;
  z-index: 99999;
  background: linear-gradient(90deg, #1B3A5C, #2C5282);
  color: #fff;
  padding: 10px 24px;
  display: flex;
  align-items: center;
  justify-content: space-between;
  font-family: sans-serif;
  font-size: 12px;
  box-shadow: 0 2px 12px rgba(0,0,0,0.3);
">
  <div style="display:flex;align-items:center;gap:12px;">
    <span style="font-weight:700;letter-spacing:1px;">&#10022; MORNINGSTAR.AI</span>
    <span style="opacity:.5;">|</span>
    <span style="opacity:.7;">Design preview for <strong style="opacity:1;">%s</strong></span>
  </div>
  <div style="display:flex;align-items:center;gap:20px;">
    <span style="opacity:.6;">Expires: %s</span>
    <a href="https://wa.me/971XXXXXXXXX?text=I%%20saw%%20my%%20preview%%20and%%20I%%27m%%20interested"
       style="background:#25D366;color:#fff;padding:7px 16px;text-decoration:none;font-weight:700;font-size:11px;letter-spacing:.5px;">
      I'M INTERESTED
    </a>
    <span style="opacity:.3;font-size:10px;">ID: %s</span>
  </div>
</div>
<div style="height:44px;"></div>
<style>
@media(max-width:768px){
  #ms-preview-banner{flex-direction:column!important;gap:8px!important;text-align:center!important;padding:10px 16px!important;}
  #ms-preview-banner>div{justify-content:center!important;}
  #ms-preview-banner a{width:100%%!important;text-align:center!important;box-sizing:border-box!important;}
}
</style>
<!-- END PREVIEW BANNER -->
`, prospectName, expiresAt.Format("2 January 2006"), shortID)

	return html[:loc[1]] + banner + html[loc[1]:]
}

// AddTracking appends a script before </body> that fires a fire-and-forget
// view event on load. Delivery is never awaited or verified; a failed beacon
// must not break the page.
func AddTracking(html, previewID, baseURL string) string {
	script := fmt.Sprintf(`
<!-- MORNINGSTAR TRACKING -->
<script>
(function() {
  try {
    fetch('%s/api/track', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({
        preview_id: '%s',
        event: 'view',
        ts: Date.now(),
        ref: document.referrer || 'direct'
      })
    });
  } catch(e) {}
})();
</script>
<!-- END TRACKING -->
`, baseURL, previewID)

	return strings.Replace(html, "</body>", script+"</body>", 1)
}
