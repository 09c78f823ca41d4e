package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/mbugua512/skillswap/configs"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
)

const certificateCompletionCount = 5

// CheckAndGenerateCertificate issues a milestone certificate once a learner
// has completed enough sessions on the same skill post. Runs best effort
// after the completed transition commits.
func CheckAndGenerateCertificate(session models.Session) {
	if session.SkillPostID == nil {
		return
	}

	var completedCount int64
	database.DB.Model(&models.Session{}).
		Where("learner_id = ? AND skill_post_id = ? AND status = ?",
			session.LearnerID, *session.SkillPostID, models.SessionStatusCompleted).
		Count(&completedCount)

	if completedCount < certificateCompletionCount {
		return
	}

	var post models.SkillPost
	if err := database.DB.Preload("Mentor").First(&post, "id = ?", *session.SkillPostID).Error; err != nil {
		log.Printf("🔥 Failed to load skill post for certificate: %v", err)
		return
	}
	var learner models.User
	if err := database.DB.First(&learner, "id = ?", session.LearnerID).Error; err != nil {
		log.Printf("🔥 Failed to load learner for certificate: %v", err)
		return
	}

	title := fmt.Sprintf("%s with %s - %d Sessions", post.Title, post.Mentor.DisplayName, certificateCompletionCount)

	var existingCert models.Certificate
	if err := database.DB.Where("learner_id = ? AND title = ?", session.LearnerID, title).First(&existingCert).Error; err == nil {
		return
	}

	htmlData, err := generateCertificateHTML(learner.DisplayName, post.Mentor.DisplayName, title)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, session.LearnerID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	newCertificate := models.Certificate{
		LearnerID:      session.LearnerID,
		MentorID:       session.MentorID,
		SkillPostID:    *session.SkillPostID,
		Title:          title,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := database.DB.Create(&newCertificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for learner %s: %v", session.LearnerID, err)
	} else {
		log.Printf("✅ Generated and uploaded certificate '%s' for learner %s.", title, session.LearnerID)
	}
}

func generateCertificateHTML(learnerName, mentorName, title string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		LearnerName    string
		MentorName     string
		Title          string
		CompletionDate string
	}{
		LearnerName:    learnerName,
		MentorName:     mentorName,
		Title:          title,
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, learnerID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", learnerID, uuid.New().String()),
		Folder:       "skillswap_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
