package mailtemplate

import "html/template"

var layoutTemplate = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Brand.Name}}</title>
</head>
<body style="margin:0;padding:0;background-color:#1a202c;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color:#1a202c;color:#ffffff;padding:40px 0;">
<tr>
<td align="center">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="max-width:600px;margin:0 auto;background:#2d3748;border-radius:8px;box-shadow:0 2px 8px rgba(0,0,0,0.08);padding:32px;">
<tr>
<td style="border-bottom:1px solid #334155;padding-bottom:16px;">
<p style="font-size:24px;font-weight:bold;color:#60a5fa;margin:0;">{{.Brand.Name}}</p>
</td>
</tr>
<tr>
<td style="padding-top:32px;">
{{.Content}}
</td>
</tr>
<tr>
<td style="border-top:1px solid #334155;padding-top:16px;">
<p style="font-size:12px;color:#94a3b8;margin:0;">&copy; {{.Year}} {{.Brand.Name}} All rights reserved.</p>
<p style="font-size:12px;color:#94a3b8;margin:0;">
{{- if .Brand.TermsURL}}<a href="{{.Brand.TermsURL}}" style="color:#94a3b8;text-decoration:underline;margin-right:12px;">Terms</a>{{end -}}
{{- if .Brand.PrivacyURL}}<a href="{{.Brand.PrivacyURL}}" style="color:#94a3b8;text-decoration:underline;margin-right:12px;">Privacy</a>{{end -}}
{{- if .Brand.ContactURL}}<a href="{{.Brand.ContactURL}}" style="color:#94a3b8;text-decoration:underline;">Contact</a>{{end -}}
</p>
</td>
</tr>
</table>
</td>
</tr>
</table>
</body>
</html>
`))

var codeTemplate = template.Must(template.New("code").Parse(`
{{- if .Intro}}<p class="intro" style="font-size:18px;margin:0 0 32px 0;">{{.Intro}}</p>
{{end -}}
<p style="font-size:18px;margin:0 0 10px 0;">Your code is:</p>
<p style="font-size:32px;font-weight:bold;letter-spacing:2px;color:#ffffff;background:#1e293b;padding:16px 32px;border-radius:6px;display:inline-block;margin:0 0 32px 0;">{{.Code}}</p>
<p style="font-size:14px;color:#cbd5e1;margin:16px 0 0 0;">If you did not request this code, you can safely ignore this email.</p>
`))
