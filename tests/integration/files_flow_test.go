package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/filebox/filebox_api/internal/api/dto"
)

// postFile uploads content as a multipart form field and returns the raw response.
func postFile(client *http.Client, baseURL, field, filename, content string) *http.Response {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreatePart(map[string][]string{
		"Content-Disposition": {fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename)},
		"Content-Type":        {"application/octet-stream"},
	})
	Expect(err).NotTo(HaveOccurred())

	_, err = part.Write([]byte(content))
	Expect(err).NotTo(HaveOccurred())
	Expect(writer.Close()).To(Succeed())

	req, err := http.NewRequest(http.MethodPost, baseURL+"/upload", body)
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	Expect(err).NotTo(HaveOccurred())
	return resp
}

// listFiles fetches /files and returns the decoded name list.
func listFiles(client *http.Client, baseURL string) []string {
	resp, err := client.Get(baseURL + "/files")
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "List files should succeed")

	var listResp dto.ListFilesResponse
	err = json.NewDecoder(resp.Body).Decode(&listResp)
	Expect(err).NotTo(HaveOccurred())
	return listResp.Files
}

var _ = Describe("File Exchange Flow E2E", func() {
	var client *http.Client
	var baseURL string

	BeforeEach(func() {
		client = &http.Client{}
		baseURL = tsServer.URL
	})

	It("Should upload, list and download a file", func() {
		// 1. Upload
		uploadResp := postFile(client, baseURL, "file", "notes.txt", "hello, filebox")
		bodyBytes, _ := io.ReadAll(uploadResp.Body)
		uploadResp.Body.Close()
		Expect(uploadResp.StatusCode).To(Equal(http.StatusOK), "Upload should succeed. Body: %s", string(bodyBytes))
		Expect(string(bodyBytes)).To(Equal("File uploaded successfully"))
		Expect(uploadResp.Header.Get("Content-Type")).To(Equal("text/plain; charset=utf-8"))

		// 2. The name shows up in the listing
		Expect(listFiles(client, baseURL)).To(ContainElement("notes.txt"))

		// 3. Download and verify content and headers
		dlResp, err := client.Get(baseURL + "/files/notes.txt")
		Expect(err).NotTo(HaveOccurred())
		defer dlResp.Body.Close()

		dlBytes, _ := io.ReadAll(dlResp.Body)
		Expect(dlResp.StatusCode).To(Equal(http.StatusOK), "Download should succeed. Body: %s", string(dlBytes))
		Expect(string(dlBytes)).To(Equal("hello, filebox"))
		Expect(dlResp.Header.Get("Content-Disposition")).To(Equal(`attachment; filename="notes.txt"`))
		Expect(dlResp.Header.Get("Content-Type")).To(Equal("application/octet-stream"))
		Expect(dlResp.ContentLength).To(Equal(int64(len("hello, filebox"))))
	})

	It("Should replace the stored content when the same name is uploaded again", func() {
		// 1. Upload twice under the same name
		firstResp := postFile(client, baseURL, "file", "draft.txt", "first version")
		firstResp.Body.Close()
		Expect(firstResp.StatusCode).To(Equal(http.StatusOK))

		secondResp := postFile(client, baseURL, "file", "draft.txt", "second version")
		secondResp.Body.Close()
		Expect(secondResp.StatusCode).To(Equal(http.StatusOK))

		// 2. Download returns the latest content
		dlResp, err := client.Get(baseURL + "/files/draft.txt")
		Expect(err).NotTo(HaveOccurred())
		defer dlResp.Body.Close()

		dlBytes, _ := io.ReadAll(dlResp.Body)
		Expect(dlResp.StatusCode).To(Equal(http.StatusOK))
		Expect(string(dlBytes)).To(Equal("second version"))

		// 3. The name is listed once, not twice
		count := 0
		for _, name := range listFiles(client, baseURL) {
			if name == "draft.txt" {
				count++
			}
		}
		Expect(count).To(Equal(1), "overwritten file should keep a single listing entry")
	})

	It("Should reject uploads without a file part", func() {
		// 1. Not a multipart request at all
		plainResp, err := client.Post(baseURL+"/upload", "application/json", strings.NewReader(`{}`))
		Expect(err).NotTo(HaveOccurred())
		plainBytes, _ := io.ReadAll(plainResp.Body)
		plainResp.Body.Close()
		Expect(plainResp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(string(plainBytes)).To(Equal("No file part"))

		// 2. Multipart form carrying only a text field
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		Expect(writer.WriteField("comment", "no file here")).To(Succeed())
		Expect(writer.Close()).To(Succeed())

		fieldResp, err := client.Post(baseURL+"/upload", writer.FormDataContentType(), body)
		Expect(err).NotTo(HaveOccurred())
		fieldBytes, _ := io.ReadAll(fieldResp.Body)
		fieldResp.Body.Close()
		Expect(fieldResp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(string(fieldBytes)).To(Equal("No file part"))

		// 3. File attached under the wrong field name
		wrongResp := postFile(client, baseURL, "document", "doc.txt", "misplaced")
		wrongBytes, _ := io.ReadAll(wrongResp.Body)
		wrongResp.Body.Close()
		Expect(wrongResp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(string(wrongBytes)).To(Equal("No file part"))

		// 4. Nothing leaked into the store
		Expect(listFiles(client, baseURL)).NotTo(ContainElement("doc.txt"))
	})

	It("Should reject uploads with an empty filename", func() {
		resp := postFile(client, baseURL, "file", "", "orphan bytes")
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(string(bodyBytes)).To(Equal("No selected file"))
		Expect(listFiles(client, baseURL)).NotTo(ContainElement(""))
	})

	It("Should return 404 for files that were never uploaded", func() {
		resp, err := client.Get(baseURL + "/files/ghost.bin")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		bodyBytes, _ := io.ReadAll(resp.Body)
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		Expect(string(bodyBytes)).To(Equal("404 page not found\n"))
	})
})
